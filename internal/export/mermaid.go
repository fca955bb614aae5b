// Package export renders snapshots of the toolkit as JSON and Mermaid.
package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/utilkit/internal/toolkit"
)

// GenerateMermaid produces a Mermaid graph TD diagram of the Utils aggregate.
// Each module becomes a subgraph of its symbols; the root node points at
// every module.
func GenerateMermaid(modules []toolkit.ModuleInfo) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("  Utils[\"Utils\"]\n")

	for i, m := range modules {
		modID := fmt.Sprintf("M%d", i)
		sb.WriteString(fmt.Sprintf("  subgraph %s[\"%s (%s)\"]\n", modID, m.Name, m.Package))
		for j, sym := range m.Symbols {
			sb.WriteString(fmt.Sprintf("    %s_%d[\"%s\"]\n", modID, j, sym))
		}
		sb.WriteString("  end\n")
	}

	for i := range modules {
		sb.WriteString(fmt.Sprintf("  Utils --> M%d\n", i))
	}

	return sb.String()
}
