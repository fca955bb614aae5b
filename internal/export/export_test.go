package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/toolkit"
	"github.com/dusk-indust/utilkit/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	mgr := users.NewManager(users.WithNotifier(nil))
	mgr.Add(users.User{ID: 1, Name: "Ada", IsActive: true})
	mgr.Add(users.User{ID: 2, Name: "Linus", IsActive: false})

	snap := Snapshot(config.Get(), mgr)

	assert.Equal(t, 2, snap.UserCount)
	assert.Equal(t, 1, snap.ActiveCount)
	assert.Equal(t, config.Default(), snap.Config)
	assert.Len(t, snap.Modules, len(toolkit.Manifest()))

	_, err := time.Parse(time.RFC3339, snap.ExportedAt)
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"isActive":true`)
	assert.Contains(t, string(raw), `"apiUrl":"https://api.example.com"`)
}

func TestSnapshot_NilManager(t *testing.T) {
	snap := Snapshot(config.Get(), nil)

	assert.Equal(t, 0, snap.UserCount)
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"users":[]`)
}

func TestSnapshot_EmptyManager(t *testing.T) {
	snap := Snapshot(config.Get(), users.NewManager(users.WithNotifier(nil)))

	assert.Equal(t, 0, snap.UserCount)
	assert.Equal(t, 0, snap.ActiveCount)
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"users":[]`)
	assert.NotContains(t, string(raw), `"users":null`)
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid([]toolkit.ModuleInfo{
		{Name: "math", Package: "internal/mathutil", Symbols: []string{"Add", "PI"}},
		{Name: "string", Package: "internal/strutil", Symbols: []string{"Reverse"}},
	})

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `subgraph M0["math (internal/mathutil)"]`)
	assert.Contains(t, out, `M0_1["PI"]`)
	assert.Contains(t, out, `M1_0["Reverse"]`)
	assert.Contains(t, out, "Utils --> M0\n")
	assert.Contains(t, out, "Utils --> M1\n")
	assert.Equal(t, 2, strings.Count(out, "  end\n"))
}
