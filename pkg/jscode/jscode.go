// Package jscode is a small line-oriented JavaScript emitter used to build the
// scripts embedded in chart output.
package jscode

import (
	"encoding/json"
	"fmt"
	"strings"
)

const indentUnit = "    "

// Writer accumulates JavaScript source. The zero value is ready to use.
type Writer struct {
	sb     strings.Builder
	indent int
	fresh  bool // true when the current line has no content yet
}

// New returns an empty Writer.
func New() *Writer { return &Writer{} }

// Create runs fn against a fresh Writer and returns the emitted source.
func Create(fn func(w *Writer)) string {
	w := New()
	fn(w)
	return w.String()
}

// NewLine terminates the current line.
func (w *Writer) NewLine() *Writer {
	w.sb.WriteByte('\n')
	w.fresh = true
	return w
}

// Write appends s verbatim to the current line.
func (w *Writer) Write(s string) *Writer {
	if w.fresh && w.indent > 0 {
		w.sb.WriteString(strings.Repeat(indentUnit, w.indent))
	}
	w.fresh = false
	w.sb.WriteString(s)
	return w
}

// Writef appends formatted text to the current line.
func (w *Writer) Writef(format string, args ...any) *Writer {
	return w.Write(fmt.Sprintf(format, args...))
}

// Line writes s as a full line and terminates it.
func (w *Writer) Line(s string) *Writer {
	return w.Write(s).NewLine()
}

// Linef writes a formatted line and terminates it.
func (w *Writer) Linef(format string, args ...any) *Writer {
	return w.Writef(format, args...).NewLine()
}

// Block writes "header {", runs body one level deeper, then writes "}".
func (w *Writer) Block(header string, body func(w *Writer)) *Writer {
	w.Line(header + " {")
	w.indent++
	body(w)
	w.indent--
	return w.Line("}")
}

// Literal JSON-encodes v for use as a JavaScript expression. The encoder
// escapes <, > and &, so the result is safe inside a script element.
func Literal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding javascript literal: %w", err)
	}
	return string(b), nil
}

func (w *Writer) String() string { return w.sb.String() }
