package main

import (
	"io"

	"github.com/dusk-indust/utilkit/internal/export"
	"github.com/dusk-indust/utilkit/internal/toolkit"
)

func runDiagram(w io.Writer) error {
	_, err := io.WriteString(w, export.GenerateMermaid(toolkit.Manifest()))
	return err
}
