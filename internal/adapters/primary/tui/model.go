// Package tui implements the presentation loop: a state machine over the
// current slide index and layout margin, driven by classified keyboard
// commands. bubbletea owns the terminal for the duration of the run and
// guarantees raw mode and cursor visibility are restored on every exit
// path, including errors.
package tui

import (
	"context"
	"fmt"
	"math"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/log"
)

// DefaultMargin is the initial four-sided layout inset.
const DefaultMargin = 2

// ReloadFunc reloads the deck from disk. It is called when the watched
// deck file changes.
type ReloadFunc func() (*entities.Deck, error)

// viewerFinishedMsg reports the external viewer process exiting.
type viewerFinishedMsg struct{ err error }

// openerFinishedMsg reports the default-application launcher exiting.
type openerFinishedMsg struct{ err error }

// deckChangedMsg reports a change to the watched deck file.
type deckChangedMsg struct{ event ports.FileChangeEvent }

// deckReloadedMsg carries the result of reloading the deck.
type deckReloadedMsg struct {
	deck *entities.Deck
	err  error
}

// Model is the presentation state machine. The deck is read-only for the
// model's lifetime; index and margin are mutated only here, in response
// to classified input.
type Model struct {
	deck     *entities.Deck
	renderer ports.SlideRenderer
	viewer   ports.Viewer
	opener   ports.Opener
	keys     keyMap

	viewerEnabled bool

	index  int
	margin int
	width  int
	height int
	ready  bool

	// content is the rendered current slide, recomputed on every state
	// change so View stays a pure read.
	content string

	// viewerShown marks that the external viewer already ran for the
	// current arrival at an image or animation slide.
	viewerShown bool

	err error

	changes <-chan ports.FileChangeEvent
	reload  ReloadFunc
}

// NewModel creates the presentation model positioned at the first slide.
func NewModel(deck *entities.Deck, renderer ports.SlideRenderer, viewer ports.Viewer, opener ports.Opener, cfg *entities.Config) Model {
	margin := DefaultMargin
	if cfg != nil {
		margin = cfg.Presentation.Margin
	}

	viewerEnabled := true
	if cfg != nil {
		viewerEnabled = cfg.Viewer.Enabled
	}

	return Model{
		deck:          deck,
		renderer:      renderer,
		viewer:        viewer,
		opener:        opener,
		keys:          defaultKeyMap(),
		viewerEnabled: viewerEnabled,
		margin:        margin,
	}
}

// WithReload enables live reload: events from the channel trigger the
// reload function and swap the deck in place.
func (m Model) WithReload(events <-chan ports.FileChangeEvent, reload ReloadFunc) Model {
	m.changes = events
	m.reload = reload
	return m
}

// Index returns the current slide index.
func (m Model) Index() int { return m.index }

// Margin returns the current layout margin.
func (m Model) Margin() int { return m.margin }

// Err returns the error that aborted the presentation, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.ClearScreen}
	if m.changes != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model: it classifies input and applies the
// resulting state transition or side effect.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case viewerFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("external viewer: %w", msg.err)
			return m, tea.Quit
		}
		return m, nil

	case openerFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("opening file: %w", msg.err)
			return m, tea.Quit
		}
		return m, nil

	case deckChangedMsg:
		log.Infof("deck file %s %s, reloading", msg.event.Path, msg.event.Type)
		return m, tea.Batch(m.reloadDeck, m.waitForChange())

	case deckReloadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("reloading deck: %w", msg.err)
			return m, tea.Quit
		}
		m.deck = msg.deck
		if m.index >= m.deck.Len() {
			m.index = m.deck.Len() - 1
		}
		return m.refresh()
	}

	return m, nil
}

// View implements tea.Model. It is a pure read of the content computed
// during the last state change.
func (m Model) View() string {
	if m.err != nil || !m.ready {
		return ""
	}
	return m.content
}

// handleKey applies the transition table for one classified command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.classify(msg) {
	case CommandQuit:
		return m, tea.Quit

	case CommandNext:
		m.index++
		m.viewerShown = false
		return m.refresh()

	case CommandPrevious:
		if m.index > 0 {
			m.index--
			m.viewerShown = false
		}
		return m.refresh()

	case CommandIncreaseMargin:
		if m.margin < math.MaxInt {
			m.margin++
		}
		return m.refresh()

	case CommandDecreaseMargin:
		if m.margin > 0 {
			m.margin--
		}
		return m.refresh()

	case CommandActivate:
		return m.activate()

	default:
		return m, nil
	}
}

// refresh is the render cycle: it terminates when no slide exists at the
// current index, launches the external viewer for viewer-backed kinds,
// and otherwise renders the slide into m.content. Any render error is
// fatal to the run.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	slide := m.deck.SlideAt(m.index)
	if slide == nil {
		// Normal end of deck.
		return m, tea.Quit
	}

	if m.viewerEnabled && !m.viewerShown &&
		(slide.Kind == entities.KindImage || slide.Kind == entities.KindAnimation) {
		m.viewerShown = true
		m.content = ""
		return m, m.viewerCmd(slide)
	}

	content, err := m.renderer.Render(context.Background(), slide, m.frame())
	if err != nil {
		m.err = fmt.Errorf("rendering slide %d: %w", m.index+1, err)
		return m, tea.Quit
	}
	m.content = content

	return m, nil
}

// frame returns the current drawing area.
func (m Model) frame() ports.Frame {
	return ports.Frame{Width: m.width, Height: m.height, Margin: m.margin}
}

// viewerCmd builds the synchronous external-viewer step: the terminal is
// restored, the viewer runs to completion, and raw mode is re-acquired
// before the finished message is delivered.
func (m Model) viewerCmd(slide *entities.Slide) tea.Cmd {
	var c *exec.Cmd
	switch slide.Kind {
	case entities.KindImage:
		c = m.viewer.ImageCommand(slide.Payload, m.width, m.height)
	case entities.KindAnimation:
		c = m.viewer.AnimationCommand(slide.Payload)
	default:
		return nil
	}

	log.Debugf("running viewer: %v", c.Args)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return viewerFinishedMsg{err: err}
	})
}

// activate triggers the current slide's side effect. Kinds without one
// are a strict no-op.
func (m Model) activate() (tea.Model, tea.Cmd) {
	slide := m.deck.SlideAt(m.index)
	if slide == nil {
		return m, nil
	}

	switch slide.Kind {
	case entities.KindExternalOpen, entities.KindImage:
		c, err := m.opener.OpenCommand(slide.Payload)
		if err != nil {
			m.err = fmt.Errorf("opening file: %w", err)
			return m, tea.Quit
		}
		log.Debugf("running opener: %v", c.Args)
		return m, tea.ExecProcess(c, func(err error) tea.Msg {
			return openerFinishedMsg{err: err}
		})

	case entities.KindAnimation:
		if !m.viewerEnabled {
			return m, nil
		}
		c := m.viewer.FitCommand(slide.Payload)
		log.Debugf("running viewer: %v", c.Args)
		return m, tea.ExecProcess(c, func(err error) tea.Msg {
			return viewerFinishedMsg{err: err}
		})

	default:
		return m, nil
	}
}

// waitForChange blocks on the next deck file change event.
func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return deckChangedMsg{event: ev}
	}
}

// reloadDeck reloads the deck from disk.
func (m Model) reloadDeck() tea.Msg {
	deck, err := m.reload()
	return deckReloadedMsg{deck: deck, err: err}
}
