package tui

import (
	"fmt"
	"strings"

	"github.com/consultready/consultready/internal/domain"
)

// RenderChecklist renders the required items with their documented state.
func RenderChecklist(cl domain.Checklist) string {
	var b strings.Builder

	done := 0
	for _, it := range cl.Items {
		if it.Done {
			done++
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render(cl.Domain+" checklist"),
		dimStyle.Render(fmt.Sprintf("(%d/%d, %.1f%%)", done, len(cl.Items), cl.Readiness.Percentage)),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, it := range cl.Items {
		if it.Done {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("✓"), it.Label)
			continue
		}
		fmt.Fprintf(&b, "    %s %s  %s\n", failStyle.Render("✗"), it.Label, faintStyle.Render(it.Key))
	}

	if done < len(cl.Items) {
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render("Document the unchecked items to raise readiness."))
		b.WriteString("\n")
	}
	return b.String()
}
