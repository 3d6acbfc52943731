package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/editor"
)

// Deps bundles what the view needs from the rest of the program.
type Deps struct {
	Catalog *catalog.Controller
	Editor  *editor.Editor
	Clock   clockwork.Clock
	Mount   astro.Mount
	Refresh time.Duration
	Logger  *slog.Logger
}

type mode string

const (
	modeList    mode = "list"
	modeEdit    mode = "edit"
	modeConfirm mode = "confirm"
)

// App is the interactive dial display.
type App struct {
	ctx     context.Context
	catalog *catalog.Controller
	editor  *editor.Editor
	clock   clockwork.Clock
	mount   astro.Mount
	refresh time.Duration
	logger  *slog.Logger

	mode   mode
	form   form
	help   help.Model
	now    time.Time
	status string
	isErr  bool
	width  int
	height int
}

type tickMsg time.Time

type statusMsg string

type errMsg struct{ error }

// committedMsg reports a finished save. id is set even when err is, since
// the catalog keeps a change whose save failed.
type committedMsg struct {
	id  string
	err error
}

type removedMsg struct {
	name string
	err  error
}

func New(ctx context.Context, deps Deps) *App {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Editor == nil {
		deps.Editor = editor.New(deps.Clock)
	}
	if deps.Refresh <= 0 {
		deps.Refresh = time.Second
	}
	if deps.Mount.Direction == 0 {
		deps.Mount = astro.DefaultMount
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		ctx:     ctx,
		catalog: deps.Catalog,
		editor:  deps.Editor,
		clock:   deps.Clock,
		mount:   deps.Mount,
		refresh: deps.Refresh,
		logger:  deps.Logger,
		mode:    modeList,
		help:    help.New(),
		now:     deps.Clock.Now(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case tickMsg:
		a.now = a.clock.Now()
		return a, a.tick()
	case tea.KeyMsg:
		switch a.mode {
		case modeEdit:
			return a.handleFormKey(m)
		case modeConfirm:
			return a.handleConfirmKey(m)
		default:
			return a.handleListKey(m)
		}
	case committedMsg:
		a.now = a.clock.Now()
		if m.id != "" {
			a.catalog.Select(m.id)
			if e, ok := a.catalog.Snapshot().Lookup(m.id); ok && a.mode == modeEdit {
				a.form.orig = e
				a.form.isNew = false
				a.form.draft = editor.DraftFrom(e)
			}
		}
		if m.err != nil {
			a.setError(fmt.Errorf("save failed: %w", m.err))
			return a, nil
		}
		a.setStatus("saved")
	case removedMsg:
		if m.err != nil {
			a.setError(fmt.Errorf("save failed: %w", m.err))
			return a, nil
		}
		a.setStatus("deleted " + m.name)
	case statusMsg:
		a.setStatus(string(m))
	case errMsg:
		a.setError(m.error)
	}
	return a, nil
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isErr = false
}

func (a *App) setError(err error) {
	a.logger.Error("tui", "error", err)
	a.status = "error: " + err.Error()
	a.isErr = true
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, listKeys.Quit):
		return a, tea.Quit
	case key.Matches(m, listKeys.Up):
		a.moveSelection(-1)
	case key.Matches(m, listKeys.Down):
		a.moveSelection(1)
	case key.Matches(m, listKeys.New):
		a.form = newForm(editor.NewDraft(a.clock.Now()), catalog.Entry{}, true)
		a.mode = modeEdit
		a.status = ""
	case key.Matches(m, listKeys.Edit):
		e, ok := a.selected()
		if !ok {
			a.setStatus("nothing selected")
			return a, nil
		}
		a.form = newForm(editor.DraftFrom(e), e, false)
		a.mode = modeEdit
		a.status = ""
	case key.Matches(m, listKeys.Delete):
		if _, ok := a.selected(); ok {
			a.mode = modeConfirm
		}
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, formKeys.Quit):
		return a, tea.Quit
	case key.Matches(m, formKeys.Done):
		a.mode = modeList
		a.status = ""
		return a, nil
	case key.Matches(m, formKeys.Next):
		a.form.move(1)
		return a, nil
	case key.Matches(m, formKeys.Prev):
		a.form.move(-1)
		return a, nil
	case key.Matches(m, formKeys.Commit):
		return a, a.commit()
	}
	cmd := a.form.update(m)
	a.form.sync(a.editor)
	return a, cmd
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, confirmKeys.Yes):
		a.mode = modeList
		e, ok := a.selected()
		if !ok {
			return a, nil
		}
		return a, a.removeCmd(e)
	case key.Matches(m, confirmKeys.No):
		a.mode = modeList
	}
	return a, nil
}

// commit validates the whole form and hands the result to the catalog.
func (a *App) commit() tea.Cmd {
	d, err := a.form.parse(a.editor)
	if err != nil {
		a.form.err = err
		var ferr *editor.FieldError
		if errors.As(err, &ferr) {
			a.form.focusField(ferr.Field)
		}
		return nil
	}
	a.form.draft = d
	a.form.err = nil

	if a.form.isNew {
		entry := a.editor.Create(d)
		return func() tea.Msg {
			id, err := a.catalog.Add(a.ctx, entry)
			return committedMsg{id: id, err: err}
		}
	}
	patches := a.editor.Changes(a.form.orig, d)
	if len(patches) == 0 {
		return func() tea.Msg { return statusMsg("no changes") }
	}
	id := a.form.orig.ID
	return func() tea.Msg {
		var firstErr error
		for _, p := range patches {
			if err := a.catalog.Update(a.ctx, p); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return committedMsg{id: id, err: firstErr}
	}
}

func (a *App) removeCmd(e catalog.Entry) tea.Cmd {
	return func() tea.Msg {
		return removedMsg{name: e.Name, err: a.catalog.Remove(a.ctx, e.ID)}
	}
}

func (a *App) selected() (catalog.Entry, bool) {
	s := a.catalog.Snapshot()
	return s.Lookup(s.Selected())
}

func (a *App) moveSelection(delta int) {
	s := a.catalog.Snapshot()
	entries := s.Entries()
	if len(entries) == 0 {
		return
	}
	idx := indexOf(entries, s.Selected())
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(entries) - 1
	default:
		idx += delta
	}
	if idx < 0 || idx >= len(entries) {
		return
	}
	a.catalog.Select(entries[idx].ID)
}

func indexOf(entries []catalog.Entry, id string) int {
	if id == "" {
		return -1
	}
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(New(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
