package provider

import (
	"fmt"
	"io"
	"strings"
)

// Writer is an indenting line writer. The first write error sticks; later
// writes are dropped and Err reports it.
type Writer struct {
	w     io.Writer
	tab   string
	depth int
	fresh bool
	err   error
}

// NewWriter wraps w, indenting each nesting level with tab.
func NewWriter(w io.Writer, tab string) *Writer {
	return &Writer{w: w, tab: tab, fresh: true}
}

// Indent increases the nesting level.
func (w *Writer) Indent() { w.depth++ }

// Outdent decreases the nesting level.
func (w *Writer) Outdent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Write appends s to the current line, indenting first if the line is new.
func (w *Writer) Write(s string) {
	if w.err != nil || s == "" {
		return
	}
	if w.fresh {
		w.emit(strings.Repeat(w.tab, w.depth))
		w.fresh = false
	}
	w.emit(s)
}

// Writef is Write with formatting.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// Line writes s and ends the line.
func (w *Writer) Line(s string) {
	w.Write(s)
	w.EndLine()
}

// Linef is Line with formatting.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// EndLine terminates the current line.
func (w *Writer) EndLine() {
	w.emit("\n")
	w.fresh = true
}

// Blank writes an empty line with no trailing indentation.
func (w *Writer) Blank() {
	if !w.fresh {
		w.EndLine()
	}
	w.emit("\n")
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

func (w *Writer) emit(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}
