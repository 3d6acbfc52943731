package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/tracker"
)

func (a *App) View() string {
	snap := a.catalog.Snapshot()
	readings := tracker.ComputeAll(snap.Entries(), a.now, a.mount)

	header := headerBarStyle.Render(fmt.Sprintf("%s  %s  mount %+.1f° %s",
		titleStyle.Render("skydial"),
		a.now.Local().Format("15:04:05"),
		a.mount.DialOffset, a.mount.Direction))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderList(snap, readings),
		"  ",
		a.renderDials(snap, readings),
	)

	parts := []string{header, body}
	switch a.mode {
	case modeEdit:
		parts = append(parts, a.form.view())
	case modeConfirm:
		if e, ok := a.selected(); ok {
			parts = append(parts, modalStyle.Render(fmt.Sprintf("Delete %q? (y/n)", e.Name)))
		}
	}
	if a.status != "" {
		style := successStyle
		if a.isErr {
			style = errorStyle
		}
		parts = append(parts, statusBarStyle.Render(style.Render(a.status)))
	}
	parts = append(parts, a.renderHelp())
	return clampWidth(strings.Join(parts, "\n"), a.width)
}

func (a *App) renderHelp() string {
	switch a.mode {
	case modeEdit:
		return a.help.View(formKeys)
	case modeConfirm:
		return a.help.View(confirmKeys)
	default:
		return a.help.View(listKeys)
	}
}

const nameWidth = 18

func (a *App) renderList(snap catalog.State, readings []tracker.Reading) string {
	lines := []string{columnHeaderStyle.Render(fmt.Sprintf("%-*s %12s %8s %8s", nameWidth, "Name", "Hour angle", "Dec°", "HA°"))}
	if len(readings) == 0 {
		lines = append(lines, mutedStyle.Render("No objects yet. Press n to add one."))
	}
	for _, r := range readings {
		row := fmt.Sprintf("%-*s %12s %8.2f %8.2f",
			nameWidth, ansi.Truncate(r.Name, nameWidth, "…"),
			r.HourAngle.String(), r.DeclinationRotation, r.HourAngleRotation)
		if r.EntryID == snap.Selected() {
			lines = append(lines, selectedRowStyle.Render(row))
			continue
		}
		lines = append(lines, rowStyle.Render(row))
	}
	return listBoxStyle.Render(strings.Join(lines, "\n"))
}

// renderDials shows the draft preview while editing, else the selected entry.
func (a *App) renderDials(snap catalog.State, readings []tracker.Reading) string {
	var (
		r     tracker.Reading
		label string
	)
	switch {
	case a.mode == modeEdit:
		r = a.editor.Preview(a.form.draft, a.mount)
		label = "preview: " + a.form.draft.Name
	default:
		idx := -1
		for i := range readings {
			if readings[i].EntryID == snap.Selected() {
				idx = i
				break
			}
		}
		if idx < 0 {
			return mutedStyle.Render("Select an object to show its dials.")
		}
		r = readings[idx]
		label = r.Name
	}
	dials := lipgloss.JoinHorizontal(lipgloss.Top,
		renderDial("Declination", r.DeclinationRotation, false, colorPeach),
		"  ",
		renderDial("Hour angle", r.HourAngleRotation, true, colorSky),
	)
	caption := mutedStyle.Render(fmt.Sprintf("%s  dec %s  ha %s", label, r.Declination, r.HourAngle))
	return lipgloss.JoinVertical(lipgloss.Left, dials, caption)
}

func clampWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
