package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"qacode/prof"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// WriteTable prints the summary of r followed by its decomposition table.
func WriteTable(w io.Writer, r Report) error {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.Algebra) + "\n")
	metric := func(label, value string) {
		sb.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
	}
	metric("Total dimension", r.Dim)
	metric("Complexity (eta)", r.Complexity)
	metric("Semisimple", yesNo(r.Semisimple))
	metric("Local", yesNo(r.Local))

	if r.Semisimple {
		sb.WriteString(okStyle.Render("Semisimple algebra: Maschke's condition is satisfied.") + "\n")
	} else {
		sb.WriteString(warnStyle.Render("Non-semisimple algebra: the Jacobson radical is non-trivial.") + "\n")
	}

	if r.Local {
		sb.WriteString("This algebra is local and cannot be decomposed further.\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	t := newTable("Isomorphism type", "Count", "Degree", "Dim")
	for _, c := range r.Components {
		t.Row(c.Type, c.Count, fmt.Sprint(c.Degree), c.Dim)
	}
	sb.WriteString(t.Render() + "\n")

	if r.Verified {
		sb.WriteString(okStyle.Render(fmt.Sprintf("Verification: dimension sum matches original algebra (D = %s)", r.DimensionSum)) + "\n")
	} else {
		sb.WriteString(failStyle.Render("Verification failed: "+r.VerifyError) + "\n")
	}

	if len(r.Witnesses) > 0 {
		sb.WriteString(titleStyle.Render("Residue fields") + "\n")
		for _, wr := range r.Witnesses {
			metric(wr.Type, wr.Modulus)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTimings prints the per-stage totals collected by prof.
func WriteTimings(w io.Writer, totals []prof.Total) error {
	t := newTable("Stage", "Calls", "Total")
	for _, tot := range totals {
		t.Row(tot.Label, fmt.Sprint(tot.Calls), tot.Dur.String())
	}
	_, err := io.WriteString(w, titleStyle.Render("Timings")+"\n"+t.Render()+"\n")
	return err
}

// newTable returns a bordered table whose first column is text and the rest numeric.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numericStyle
			}
		})
}
