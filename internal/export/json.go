package export

import (
	"time"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/toolkit"
	"github.com/dusk-indust/utilkit/internal/users"
)

// SnapshotExport is the top-level JSON export structure.
type SnapshotExport struct {
	ExportedAt  string               `json:"exportedAt"`
	Config      config.AppConfig     `json:"config"`
	Users       []users.User         `json:"users"`
	UserCount   int                  `json:"userCount"`
	ActiveCount int                  `json:"activeCount"`
	Modules     []toolkit.ModuleInfo `json:"modules"`
}

// Snapshot captures cfg, the users held by mgr, and the module manifest.
// A nil mgr exports an empty user list.
func Snapshot(cfg config.AppConfig, mgr *users.Manager) *SnapshotExport {
	export := &SnapshotExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Config:     cfg,
		Users:      []users.User{},
		Modules:    toolkit.Manifest(),
	}

	if mgr != nil {
		export.Users = mgr.All()
		export.ActiveCount = len(mgr.ActiveUsers())
	}
	export.UserCount = len(export.Users)

	return export
}
