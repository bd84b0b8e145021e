package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	models "keystone/internal/domain/models/knowledge"
	"keystone/internal/domain/repositories"
	knowledgeSvc "keystone/internal/domain/services/knowledge"
	"keystone/internal/filetypes"
	"keystone/internal/service/chathistory"
	svcknowledge "keystone/internal/service/knowledge"
)

// Tab identifies which workspace view is active.
type Tab int

const (
	// TabKnowledge shows the knowledge-base tree.
	TabKnowledge Tab = iota
	// TabChat shows the date-grouped chat-history list.
	TabChat
)

// statusFadeDelay is how long error and info notices stay in the status bar.
const statusFadeDelay = 4 * time.Second

// treeLoadedMsg delivers a freshly built snapshot. The snapshot is always
// valid (possibly empty); err carries the fetch failure when one occurred.
type treeLoadedMsg struct {
	snapshot *models.Snapshot
	err      error
}

// moveResultMsg is sent when an asynchronous move call completes. On
// success the tree is reloaded; on error the tree is left exactly as it
// was and the error is shown in the status bar.
type moveResultMsg struct {
	err error
}

// mutateResultMsg is sent when a create or delete call completes.
type mutateResultMsg struct {
	action string
	err    error
}

// historyLoadedMsg delivers the grouped chat-history sessions.
type historyLoadedMsg struct {
	groups []chathistory.Group
	err    error
}

// statusFadeMsg clears the status bar notice after a delay.
type statusFadeMsg struct{}

// grabbedNode holds the encoded drag payload for the active grab session.
// The payload travels encoded, exactly as it would across a real drag
// transfer, and is decoded and validated again at drop time.
type grabbedNode struct {
	id        int
	kind      models.NodeKind
	name      string
	mediaType string
	data      []byte
}

// Model is the bubbletea model for the workspace.
type Model struct {
	keys KeyMap

	trees   knowledgeSvc.TreeService
	dirs    knowledgeSvc.DirectoryService
	mover   repositories.TreeMutator
	history *chathistory.Store
	types   *filetypes.Registry
	logger  *slog.Logger

	width  int
	height int
	tab    Tab

	snapshot  *models.Snapshot
	rows      []row
	cursor    int
	collapsed map[int]bool

	loading bool
	moving  bool
	grab    *grabbedNode

	groups []chathistory.Group

	input     textinput.Model
	prompting bool

	status      string
	statusError bool
}

// New creates the workspace model. The tree loads on Init.
func New(
	trees knowledgeSvc.TreeService,
	dirs knowledgeSvc.DirectoryService,
	mover repositories.TreeMutator,
	history *chathistory.Store,
	types *filetypes.Registry,
	logger *slog.Logger,
) Model {
	input := textinput.New()
	input.Placeholder = "directory name"
	input.CharLimit = 255

	return Model{
		keys:      DefaultKeyMap,
		trees:     trees,
		dirs:      dirs,
		mover:     mover,
		history:   history,
		types:     types,
		logger:    logger,
		snapshot:  models.EmptySnapshot(),
		collapsed: make(map[int]bool),
		loading:   true,
		input:     input,
	}
}

// Init kicks off the initial tree and history loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTreeCmd(), m.loadHistoryCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case treeLoadedMsg:
		// Wholesale replacement: the last resolved load wins, whatever
		// was in flight before it.
		m.loading = false
		m.snapshot = msg.snapshot
		m.rebuildRows()
		if msg.err != nil {
			m.setStatus("load failed: "+msg.err.Error(), true)
			return m, m.statusFadeCmd()
		}
		return m, nil

	case moveResultMsg:
		m.moving = false
		if msg.err != nil {
			// The tree was never touched; just surface the failure. No
			// reload on failure.
			m.logger.Warn("move rejected", "error", msg.err)
			m.setStatus("move failed: "+msg.err.Error(), true)
			return m, m.statusFadeCmd()
		}
		m.grab = nil
		m.loading = true
		return m, m.loadTreeCmd()

	case mutateResultMsg:
		if msg.err != nil {
			m.setStatus(msg.action+" failed: "+msg.err.Error(), true)
			return m, m.statusFadeCmd()
		}
		m.loading = true
		return m, m.loadTreeCmd()

	case historyLoadedMsg:
		if msg.err != nil {
			m.setStatus("history load failed: "+msg.err.Error(), true)
			return m, m.statusFadeCmd()
		}
		m.groups = msg.groups
		return m, nil

	case statusFadeMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The new-directory prompt captures all input until submitted or
	// dismissed.
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleView):
		if m.tab == TabKnowledge {
			m.tab = TabChat
			return m, m.loadHistoryCmd()
		}
		m.tab = TabKnowledge
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadTreeCmd()
	}

	if m.tab != TabKnowledge {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	case key.Matches(msg, m.keys.Collapse):
		if n := m.currentNode(); n != nil && n.IsDirectory() {
			m.collapsed[n.ID] = true
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Expand):
		if n := m.currentNode(); n != nil && n.IsDirectory() {
			delete(m.collapsed, n.ID)
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Grab):
		return m.beginGrab()

	case key.Matches(msg, m.keys.Drop):
		return m.dropOnCursor()

	case key.Matches(msg, m.keys.DropAtRoot):
		return m.dropAtRoot()

	case key.Matches(msg, m.keys.Cancel):
		if m.grab != nil {
			m.grab = nil
			m.setStatus("grab cancelled", false)
			return m, m.statusFadeCmd()
		}

	case key.Matches(msg, m.keys.NewDirectory):
		m.prompting = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		return m.deleteCursor()
	}

	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Drop): // enter submits the prompt
		name := m.input.Value()
		parentID := m.currentParentID()
		m.prompting = false
		m.input.Blur()
		return m, m.createDirectoryCmd(name, parentID)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// beginGrab starts a drag session for the node under the cursor. The
// payload is computed and encoded once here; the descendant set makes drop
// validation a lookup.
func (m Model) beginGrab() (tea.Model, tea.Cmd) {
	if m.moving {
		return m, nil
	}
	n := m.currentNode()
	if n == nil {
		return m, nil
	}

	payload := svcknowledge.BeginDrag(n)
	mediaType, data, err := svcknowledge.EncodeDragPayload(payload)
	if err != nil {
		m.logger.Warn("drag payload encode failed", "node_id", n.ID, "error", err)
		return m, nil
	}

	m.grab = &grabbedNode{id: n.ID, kind: n.Kind, name: n.Name, mediaType: mediaType, data: data}
	m.setStatus("grabbed "+n.Name+" — drop with enter, m for root, esc to cancel", false)
	return m, nil
}

// dropOnCursor validates the grabbed payload against the cursor target and
// issues exactly one move request when legal. Malformed payloads are inert;
// invalid targets never reach the backend.
func (m Model) dropOnCursor() (tea.Model, tea.Cmd) {
	if m.grab == nil || m.moving {
		return m, nil
	}

	payload, ok := svcknowledge.DecodeDragPayload(m.grab.mediaType, m.grab.data)
	if !ok {
		// Foreign or malformed payload: treat as no drag at all.
		m.grab = nil
		return m, nil
	}

	target := m.currentNode()
	if target == nil || !svcknowledge.CanDrop(payload, target) {
		m.setStatus("cannot drop here", true)
		return m, m.statusFadeCmd()
	}

	m.moving = true
	targetID := target.ID
	return m, m.moveCmd(payload, &targetID)
}

// dropAtRoot moves the grabbed node to the top level.
func (m Model) dropAtRoot() (tea.Model, tea.Cmd) {
	if m.grab == nil || m.moving {
		return m, nil
	}

	payload, ok := svcknowledge.DecodeDragPayload(m.grab.mediaType, m.grab.data)
	if !ok {
		m.grab = nil
		return m, nil
	}
	if !svcknowledge.CanDropAtRoot(payload) {
		return m, nil
	}

	m.moving = true
	return m, m.moveCmd(payload, nil)
}

func (m Model) deleteCursor() (tea.Model, tea.Cmd) {
	n := m.currentNode()
	if n == nil || m.moving {
		return m, nil
	}
	id := n.ID
	isDir := n.IsDirectory()
	return m, func() tea.Msg {
		var err error
		if isDir {
			err = m.dirs.DeleteDirectory(context.Background(), id)
		} else {
			err = m.dirs.DeleteDocument(context.Background(), id)
		}
		return mutateResultMsg{action: "delete", err: err}
	}
}

func (m Model) loadTreeCmd() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.trees.LoadSnapshot(context.Background())
		return treeLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.history.Load()
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{groups: chathistory.GroupByDay(sessions, time.Now())}
	}
}

func (m Model) moveCmd(payload *models.DragPayload, targetID *int) tea.Cmd {
	return func() tea.Msg {
		var err error
		if payload.Kind == models.NodeFile {
			err = m.mover.MoveDocument(context.Background(), payload.ID, targetID)
		} else {
			err = m.mover.MoveDirectory(context.Background(), payload.ID, targetID)
		}
		return moveResultMsg{err: err}
	}
}

func (m Model) createDirectoryCmd(name string, parentID *int) tea.Cmd {
	return func() tea.Msg {
		req := &knowledgeSvc.CreateDirectoryRequest{Name: name, ParentID: parentID}
		_, err := m.dirs.CreateDirectory(context.Background(), req)
		return mutateResultMsg{action: "create directory", err: err}
	}
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
}

func (m Model) statusFadeCmd() tea.Cmd {
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{}
	})
}
