package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iainktaylor/spotify-converter/internal/models"
	"github.com/iainktaylor/spotify-converter/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	ConfirmView
	ConvertView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	lib          *models.Library
	engine       tasks.DocEngine
	opts         tasks.ConvertOpts
	width        int
	height       int
	playlistList list.Model
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	bar          progress.Model
	result       *tasks.ConvertResult
	err          error
	help         help.Model
	keys         keyMap
}

type progressUpdateMsg tasks.ProgressUpdate

type convertCompleteMsg struct {
	result *tasks.ConvertResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, lib *models.Library, engine tasks.DocEngine, opts tasks.ConvertOpts) *Model {
	items := make([]list.Item, len(lib.Playlists))
	for i := range lib.Playlists {
		items[i] = playlistItem{playlist: &lib.Playlists[i]}
	}
	playlistList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "Spotify Playlists"

	return &Model{
		ctx:          ctx,
		view:         PlaylistListView,
		lib:          lib,
		engine:       engine,
		opts:         opts,
		playlistList: playlistList,
		bar:          progress.New(progress.WithDefaultGradient()),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init satisfies [tea.Model]. The library is loaded before the program
// starts, so there is nothing to fetch.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.bar.Width = min(msg.Width-8, 60)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case convertCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	if m.view == PlaylistListView {
		var cmd tea.Cmd
		m.playlistList, cmd = m.playlistList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case ConfirmView:
		return m.renderConfirm()
	case ConvertView:
		return m.renderConvert()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n", "esc":
		m.view = PlaylistListView
		return m, nil
	case "y", "enter":
		m.view = ConvertView
		return m, m.startConvert()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) startConvert() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.engine.Convert(m.ctx, m.progressChan, m.lib, m.opts)
		m.result = result
		m.err = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return convertCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			m.progressChan = nil
			return convertCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPlaylistList() string {
	convertKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "convert"),
	)
	helpKeys := []key.Binding{convertKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Convert %d playlists to %s?", m.lib.PlaylistCount(), m.opts.Format))
	info := fmt.Sprintf(
		"\nOutput directory: %s\nTotal tracks: %d\nIndex title: %s\n",
		m.opts.OutputDir, m.lib.TotalTracks(), m.opts.IndexTitle,
	)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderConvert() string {
	title := styles.title.Render("Generating Documents")

	var phase string
	switch m.progress.Phase {
	case tasks.PrepareOutput:
		phase = "Preparing output directory..."
	case tasks.WritePages:
		phase = fmt.Sprintf("Writing playlist pages (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.WriteIndex:
		phase = "Writing index..."
	default:
		phase = "Processing..."
	}

	var percent float64
	if m.progress.Total > 0 {
		percent = float64(m.progress.Step) / float64(m.progress.Total)
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s", title, phase, m.bar.ViewAs(percent), m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Conversion failed: %v\n\nPress q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress q to quit")
	}

	title := styles.ok.Render("✓ Conversion Complete!")
	info := fmt.Sprintf(
		"\nOutput: %s\nFormat: %s\nPlaylists: %d\nTracks: %d\nIndex: %s",
		m.result.OutputDirectory,
		m.result.Format,
		m.result.TotalPlaylists,
		m.result.TotalTracks,
		m.result.IndexPath,
	)

	var warnings string
	if len(m.result.DuplicateNames) > 0 {
		warnings = fmt.Sprintf("\n\n%s", styles.warn.Render("Duplicate filenames overwritten:"))
		for _, name := range m.result.DuplicateNames {
			warnings += fmt.Sprintf("\n  • %s", name)
		}
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.quit})

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, warnings, helpView)
}
