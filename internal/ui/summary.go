// Package ui formats trip results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eldlog/internal/duty"
	"eldlog/internal/trip"
)

// Summary renders the trip summary panel followed by one line of duty
// totals per log sheet.
func Summary(d *trip.Data) string {
	fields := []struct{ label, value string }{
		{"Pickup", d.PickupLocation},
		{"Dropoff", d.DropoffLocation},
		{"Total Distance", fmt.Sprintf("%.1f miles", d.RouteData.Miles())},
		{"Estimated Duration", trip.FormatDuration(d.RouteData.Duration)},
		{"HOS Cycle Used", fmt.Sprintf("%g hrs", d.CurrentCycleUsedHrs)},
	}

	lines := []string{TitleStyle.Render("Trip Summary")}
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(f.label), ValueStyle.Render(f.value)))
	}

	if len(d.LogSheets) > 0 {
		lines = append(lines, "", TitleStyle.Render("Daily Log Sheets"))
		for i, sheet := range d.LogSheets {
			lines = append(lines, SheetLine(i, sheet))
		}
	}

	return PanelStyle.Render(strings.Join(lines, "\n"))
}

// SheetLine formats one sheet as "#n date  Off Duty 10.0h  ...".
func SheetLine(index int, sheet duty.LogSheet) string {
	parts := make([]string, 0, len(duty.Statuses()))
	for _, s := range duty.Statuses() {
		parts = append(parts, fmt.Sprintf("%s %.1fh", s.Label(), duty.TotalHours(sheet.Events, s)))
	}
	head := LabelStyle.Render(fmt.Sprintf("#%d %s", index+1, sheet.Date))
	return lipgloss.JoinHorizontal(lipgloss.Top, head, ValueStyle.Render(strings.Join(parts, "  ")))
}
