package display

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// MIME types produced by nbview.
const (
	MIMEText  = "text/plain"
	MIMEHTML  = "text/html"
	MIMEGrid  = "application/vnd.nbview.grid+json"
	MIMEError = "application/vnd.nbview.error+json"
)

// Bundle maps MIME type to content. The host renders the richest type it supports.
type Bundle map[string]string

// MIMETypes returns the bundle's MIME types, sorted.
func (b Bundle) MIMETypes() []string {
	return slices.Sorted(maps.Keys(b))
}

// Result is what a display callback hands back to the registry.
type Result struct {
	bundle Bundle
	hidden bool
}

// Hidden signals that the callback already published its output.
var Hidden = Result{hidden: true}

// Show wraps a bundle for the registry to publish.
func Show(b Bundle) Result { return Result{bundle: b} }

// HTML is shorthand for Show(Bundle{MIMEHTML: html}).
func HTML(html string) Result { return Show(Bundle{MIMEHTML: html}) }

func (r Result) Hidden() bool   { return r.hidden }
func (r Result) Bundle() Bundle { return r.bundle }

// Cell receives published output for one notebook cell.
type Cell interface {
	Publish(b Bundle) error
}

// Buffer is an in-memory Cell. It is safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	bundles []Bundle
}

func (b *Buffer) Publish(bundle Bundle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bundles = append(b.bundles, maps.Clone(bundle))
	return nil
}

// Bundles returns everything published so far.
func (b *Buffer) Bundles() []Bundle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.bundles)
}

// Last returns the most recent bundle, or nil.
func (b *Buffer) Last() Bundle {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.bundles) == 0 {
		return nil
	}
	return b.bundles[len(b.bundles)-1]
}

// Host pairs a registry with the cell it displays into.
type Host struct {
	Registry *Registry
	Out      Cell
}

type errorPayload struct {
	Kind    string `json:"kind,omitempty"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Show displays v. A failed display is published as an error output and the
// error is returned.
func (h *Host) Show(v any) error {
	err := h.Registry.Display(h.Out, v)
	if err == nil {
		return nil
	}
	payload := errorPayload{Type: fmt.Sprintf("%T", v), Message: err.Error()}
	if d, ok := v.(Displayable); ok {
		payload.Kind = d.DisplayKind()
	}
	data, mErr := json.Marshal(payload)
	if mErr != nil {
		data = []byte(`{}`)
	}
	if pErr := h.Out.Publish(Bundle{
		MIMEError: string(data),
		MIMEText:  "display failed: " + err.Error(),
	}); pErr != nil {
		return fmt.Errorf("%w (publishing error output: %v)", err, pErr)
	}
	return err
}
