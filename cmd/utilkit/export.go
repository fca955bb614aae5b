package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/export"
	"github.com/dusk-indust/utilkit/internal/users"
)

func runExport(w io.Writer, cfg config.AppConfig) error {
	mgr := users.NewManager(users.WithNotifier(nil))
	for _, u := range sampleUsers() {
		mgr.Add(u)
	}

	data := export.Snapshot(cfg, mgr)

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = w.Write(append(out, '\n'))
	return err
}
