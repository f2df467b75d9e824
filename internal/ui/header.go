package ui

import (
	"fmt"

	"atrisure/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// renderHeader draws the brand bar with pipeline totals.
func (a *AppModel) renderHeader() string {
	left := Styles.Header.Render("AtriSure Nexus") +
		Styles.Header.Foreground(lipgloss.Color(ColorSecondary)).Render("broker operations workspace")
	stats := fmt.Sprintf("%s prospects · %s pipeline · %s blocks",
		humanize.Comma(int64(a.Prospects.Len())),
		formatPremium(a.Prospects.TotalPremium()),
		humanize.Comma(int64(a.Canvas.Len())),
	)
	right := Styles.Header.Foreground(lipgloss.Color(ColorMuted)).Render(stats)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + Styles.Header.Padding(0).Render(textutil.PadRightVisual("", gap)) + right
}

// renderStatusLine shows the last action result, or the key hints.
func (a *AppModel) renderStatusLine() string {
	if a.Status == "" {
		return Styles.Hint.Render("tab focus  SPC commands  ctrl+c quit")
	}
	if a.StatusIsError {
		return Styles.Error.Render("✗ " + a.Status)
	}
	return Styles.Success.Render("✓ " + a.Status)
}
