package main

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
)

// liveTray redraws the disk entries in place on a terminal. It is a
// read-only view and never produces selections.
type liveTray struct {
	writer *uilive.Writer
}

func newLiveTray(out io.Writer) *liveTray {
	writer := uilive.New()
	writer.Out = out
	return &liveTray{writer: writer}
}

func (t *liveTray) Display(menu Menu) {
	entries := menu.DiskEntries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(t.writer, "No volumes mounted")
	}
	for _, entry := range entries {
		marker := " "
		if !entry.Disabled {
			marker = "*"
		}
		_, _ = fmt.Fprintf(t.writer, "%s %s\n", marker, entry.Label)
	}
	if menu.Status != "" {
		_, _ = fmt.Fprintln(t.writer, menu.Status)
	}
	_ = t.writer.Flush()
}

func (t *liveTray) Selections() <-chan string {
	return nil
}

func (t *liveTray) Close() {}
