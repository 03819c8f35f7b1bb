package output

import (
	"fmt"
	"strings"

	"github.com/firecalc/firecalc/internal/domain"
)

// RenderSweepTable formats a withdrawal sensitivity sweep as a plain-text
// table.
func RenderSweepTable(points []domain.SweepPoint) []byte {
	var b strings.Builder

	b.WriteString("WITHDRAWAL SENSITIVITY\n")
	b.WriteString(strings.Repeat("=", 56) + "\n")
	b.WriteString(fmt.Sprintf("%-18s %-18s %-12s %s\n",
		"Withdrawal", "Final balance", "Depleted", "Sustainable"))
	b.WriteString(strings.Repeat("-", 56) + "\n")

	for _, pt := range points {
		b.WriteString(fmt.Sprintf("%-18s %-18s %-12s %v\n",
			FormatCurrency(pt.AnnualWithdrawal),
			FormatCurrency(pt.FinalBalance),
			FormatDepletion(pt.DepletionPeriod),
			pt.Sustainable))
	}

	return []byte(b.String())
}
