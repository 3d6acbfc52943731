package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/editor"
)

var formFields = []struct {
	id    string
	label string
	width int
}{
	{editor.FieldName, "Name", 24},
	{editor.FieldDecDegree, "Dec °", 6},
	{editor.FieldDecMinute, "Dec '", 6},
	{editor.FieldHour, "HA h", 3},
	{editor.FieldMinute, "HA m", 3},
	{editor.FieldSecond, "HA s", 3},
}

// form edits one entry. orig is the committed entry; draft tracks the inputs
// as far as they currently parse, for the live preview.
type form struct {
	inputs []textinput.Model
	focus  int
	orig   catalog.Entry
	isNew  bool
	draft  editor.Draft
	err    error
}

func newForm(d editor.Draft, orig catalog.Entry, isNew bool) form {
	values := []string{
		d.Name,
		formatFloat(d.Declination.Degree),
		formatFloat(d.Declination.Minute),
		strconv.Itoa(d.HourAngle.Hour),
		strconv.Itoa(d.HourAngle.Minute),
		strconv.Itoa(d.HourAngle.Second),
	}
	f := form{orig: orig, isNew: isNew, draft: d}
	for i, field := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = field.width
		ti.CharLimit = 64
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.SetValue(values[i])
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].Focus()
	return f
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusField(id string) {
	for i, field := range formFields {
		if field.id == id {
			f.move(i - f.focus)
			return
		}
	}
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string { return f.inputs[i].Value() }

// parse converts every input, returning the first field error.
func (f *form) parse(ed *editor.Editor) (editor.Draft, error) {
	name, err := editor.ParseName(f.value(0))
	if err != nil {
		return f.draft, err
	}
	dec, err := editor.ParseDeclination(f.value(1), f.value(2))
	if err != nil {
		return f.draft, err
	}
	ha, err := editor.ParseHourAngle(f.value(3), f.value(4), f.value(5))
	if err != nil {
		return f.draft, err
	}
	d := f.draft
	d.Name = name
	d.Declination = dec
	return ed.SetHourAngle(d, ha), nil
}

// sync refreshes the preview draft with whatever currently parses.
func (f *form) sync(ed *editor.Editor) {
	d, err := f.parse(ed)
	f.err = err
	if err == nil {
		f.draft = d
	}
}

func (f *form) view() string {
	title := "Edit " + f.orig.Name
	if f.isNew {
		title = "New object"
	}
	var cells []string
	for i, field := range formFields {
		label := labelStyle.Render(field.label)
		if i == f.focus {
			label = titleStyle.Render(field.label)
		}
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Left, label, f.inputs[i].View()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells, "  ")...)

	lines := []string{titleStyle.Render(title), row}
	var ferr *editor.FieldError
	switch {
	case errors.As(f.err, &ferr):
		lines = append(lines, errorStyle.Render(fmt.Sprintf("%s %s", fieldLabel(ferr.Field), ferr.Message)))
	case f.err != nil:
		lines = append(lines, errorStyle.Render(f.err.Error()))
	default:
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s  dec %s  ha %s", f.draft.Name, f.draft.Declination, f.draft.HourAngle)))
	}
	return formBoxStyle.Render(strings.Join(lines, "\n"))
}

func fieldLabel(id string) string {
	for _, field := range formFields {
		if field.id == id {
			return field.label
		}
	}
	return id
}

func joinWithGap(parts []string, gap string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}
