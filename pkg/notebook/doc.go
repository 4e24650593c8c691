// Package notebook registers the nbview display adapters with a display
// registry: one table callback for frames and one HTML callback per chart kind.
//
// Registration is per entry. A failing entry is logged and skipped so the
// remaining adapters still register; values whose adapter is missing fall back
// to the registry's plain-text rendering.
package notebook
