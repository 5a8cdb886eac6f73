package formatter

import (
	"errors"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
)

// FormatError renders analysis and plan errors with their violations or
// suggestions. Other errors render as a single red line.
func FormatError(err error) string {
	var b strings.Builder

	var ae *contract.AnalysisError
	if errors.As(err, &ae) {
		b.WriteString(StyleRed.Render("✖ "+ae.Message) + " " + Dim("["+string(ae.Code)+"]") + "\n")
		b.WriteString(BulletList(ae.Violations))
		return b.String()
	}

	var pe *contract.PlanError
	if errors.As(err, &pe) {
		b.WriteString(StyleRed.Render("✖ "+pe.Message) + " " + Dim("["+string(pe.Code)+"]") + "\n")
		if pe.Reason != "" {
			b.WriteString("  " + pe.Reason + "\n")
		}
		if len(pe.Suggestions) > 0 {
			b.WriteString("\n" + StyleHeader.Render("Try one of:") + "\n")
			b.WriteString(BulletList(pe.Suggestions))
		}
		return b.String()
	}

	return StyleRed.Render("✖ "+err.Error()) + "\n"
}
