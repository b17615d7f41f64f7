package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"webquote/internal/domain/entities"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = cellStyle.Align(lipgloss.Right)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderDerivation(s entities.SelectionState, d entities.Derivation) string {
	rows := make([][]string, 0, len(d.Breakdown.Items))
	for _, it := range d.Breakdown.Items {
		rows = append(rows, []string{it.Name, formatPrice(it.Value)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ITEM", "PRICE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(mutedStyle.Render(describeSelection(s)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(totalStyle.Render("Total: " + formatPrice(d.Breakdown.Total)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Duration: %d working days (~%d weeks)\n", d.Duration, d.Timeline.Weeks)
	fmt.Fprintf(&b, "  design %d / development %d / testing %d\n",
		d.Timeline.Design, d.Timeline.Development, d.Timeline.Testing)
	return b.String()
}

func describeSelection(s entities.SelectionState) string {
	parts := []string{}
	if s.Category != "" {
		parts = append(parts, "category="+string(s.Category))
	}
	if s.Stack != "" {
		parts = append(parts, "stack="+string(s.Stack))
	}
	parts = append(parts, "hosting="+strconv.FormatBool(s.IncludeHosting))
	if len(s.PluginIDs) > 0 {
		parts = append(parts, "plugins="+strings.Join(s.PluginIDs, ","))
	}
	if s.SupportPackageID != "" {
		parts = append(parts, "support="+s.SupportPackageID)
	}
	return strings.Join(parts, " ")
}

// formatPrice prints millions with one decimal, the precision of every line
// item.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "M"
}
