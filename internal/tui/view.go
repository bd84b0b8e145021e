package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	models "keystone/internal/domain/models/knowledge"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Faint(true)

	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	grabbedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	badgeStyle   = lipgloss.NewStyle().Faint(true)
	pendingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	groupStyle   = lipgloss.NewStyle().Bold(true)

	statusStyle      = lipgloss.NewStyle().Faint(true)
	statusErrorStyle = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// View renders the active workspace view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.tab {
	case TabKnowledge:
		b.WriteString(m.renderTree())
	case TabChat:
		b.WriteString(m.renderHistory())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	knowledge := "Knowledge Base"
	chat := "Chat History"
	switch m.tab {
	case TabKnowledge:
		chat = tabStyle.Render(chat)
	case TabChat:
		knowledge = tabStyle.Render(knowledge)
	}
	return titleStyle.Render("keystone") + "  " + knowledge + " │ " + chat
}

func (m Model) renderTree() string {
	if m.loading && len(m.rows) == 0 {
		return pendingStyle.Render("  loading…")
	}
	if len(m.rows) == 0 {
		return pendingStyle.Render("  empty — press n to create a directory, r to refresh")
	}

	var b strings.Builder
	for i, r := range m.rows {
		line := strings.Repeat("  ", r.depth) + m.renderNode(r.node)
		if m.grab != nil && m.isGrabbed(r.node) {
			line = grabbedStyle.Render(line)
		}
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n  New directory: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderNode(n *models.TreeNode) string {
	if n.IsDirectory() {
		marker := "▾"
		if m.collapsed[n.ID] {
			marker = "▸"
		}
		return fmt.Sprintf("%s %s/", marker, n.Name)
	}

	info := m.types.Lookup(n.FileType)
	line := fmt.Sprintf("%s %s", info.Icon, n.Name)
	if n.KnowledgePointCount > 0 {
		line += badgeStyle.Render(fmt.Sprintf("  · %d pts", n.KnowledgePointCount))
	}
	if !n.Processed {
		line += pendingStyle.Render("  (processing)")
	}
	return line
}

func (m Model) isGrabbed(n *models.TreeNode) bool {
	return m.grab != nil && m.grab.id == n.ID && m.grab.kind == n.Kind
}

func (m Model) renderHistory() string {
	if len(m.groups) == 0 {
		return pendingStyle.Render("  no chat history yet")
	}

	var b strings.Builder
	for _, g := range m.groups {
		b.WriteString("  " + groupStyle.Render(g.Label) + "\n")
		for _, s := range g.Sessions {
			b.WriteString(fmt.Sprintf("    %s", s.Title))
			if s.MessageCount > 0 {
				b.WriteString(badgeStyle.Render(fmt.Sprintf("  · %d messages", s.MessageCount)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	switch {
	case m.status != "" && m.statusError:
		return statusErrorStyle.Render("  ✗ " + m.status)
	case m.status != "":
		return statusStyle.Render("  " + m.status)
	case m.moving:
		return statusStyle.Render("  moving…")
	case m.loading:
		return statusStyle.Render("  loading…")
	case m.grab != nil:
		return statusStyle.Render("  holding " + m.grab.name)
	}
	return ""
}

func (m Model) renderHelp() string {
	if m.tab == TabChat {
		return helpStyle.Render("  tab: knowledge  r: refresh  q: quit")
	}
	return helpStyle.Render("  j/k: move  h/l: fold  space: grab  enter: drop  m: root  n: new dir  d: delete  r: refresh  tab: chat  q: quit")
}
