package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/labeler/internal/controller"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptNewGroup
	promptDeleteGroup
)

type modelTUI struct {
	ctx   context.Context
	ctrl  *controller.Controller
	board *Board
	keys  keyMap
	help  help.Model

	// Inline prompt for group names, shared by create and delete.
	prompt promptKind
	ti     textinput.Model

	focus  int // selected group control
	width  int
	height int
}

func newModel(ctx context.Context, ctrl *controller.Controller, board *Board) modelTUI {
	board.Seed(ctrl.Frame())

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 120

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle

	return modelTUI{
		ctx:    ctx,
		ctrl:   ctrl,
		board:  board,
		keys:   newKeyMap(),
		help:   h,
		ti:     ti,
		width:  80,
		height: 24,
	}
}

// Run starts the labeling screen and blocks until the user quits. board must
// be the UI collaborator ctrl was built with.
func Run(ctx context.Context, ctrl *controller.Controller, board *Board) error {
	p := tea.NewProgram(newModel(ctx, ctrl, board), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
		return m, nil
	}

	// prompt mode
	if m.prompt != promptNone {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				name := strings.TrimSpace(m.ti.Value())
				kind := m.prompt
				m.closePrompt()
				if kind == promptNewGroup {
					_ = m.ctrl.RequestNewGroup(name)
				} else {
					_ = m.ctrl.RequestDeleteGroup(name)
				}
				m.clampFocus()
				return m, nil
			case "esc", "ctrl+c":
				// cancelled
				m.closePrompt()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.board.clearNotice()

	if d := digit(km); d > 0 {
		if d <= len(m.board.controls) {
			m.focus = d - 1
			_ = m.ctrl.AssignHandle(m.board.controls[d-1].id)
		}
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Prev):
		_ = m.ctrl.Prev()
	case key.Matches(km, m.keys.Next):
		_ = m.ctrl.Next()
	case key.Matches(km, m.keys.Up):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(km, m.keys.Down):
		if m.focus < len(m.board.controls)-1 {
			m.focus++
		}
	case key.Matches(km, m.keys.Assign):
		if m.focus >= 0 && m.focus < len(m.board.controls) {
			_ = m.ctrl.AssignHandle(m.board.controls[m.focus].id)
		}
	case key.Matches(km, m.keys.AddGroup):
		return m, m.openPrompt(promptNewGroup, "New category name...")
	case key.Matches(km, m.keys.DelGroup):
		return m, m.openPrompt(promptDeleteGroup, "Category to delete...")
	case key.Matches(km, m.keys.Export):
		_ = m.ctrl.RequestExport(m.ctx)
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *modelTUI) openPrompt(kind promptKind, placeholder string) tea.Cmd {
	m.prompt = kind
	m.ti.SetValue("")
	m.ti.Placeholder = placeholder
	return m.ti.Focus()
}

func (m *modelTUI) closePrompt() {
	m.prompt = promptNone
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m *modelTUI) clampFocus() {
	if m.focus >= len(m.board.controls) {
		m.focus = len(m.board.controls) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// digit maps the keys 1-9 to control positions.
func digit(k tea.KeyMsg) int {
	s := k.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}

func (m modelTUI) View() string {
	f := m.board.frame

	var card string
	if f.Empty {
		card = mutedStyle.Render("No items to label.")
	} else {
		card = strings.Join([]string{
			mutedStyle.Render(fmt.Sprintf("Item %d/%d", f.Index+1, f.Total)),
			"",
			titleStyle.Render(f.ItemName),
			"",
			accentStyle.Render("Group: " + f.ItemGroup),
		}, "\n")
	}
	card = cardStyle.Render(card)

	buttons := make([]string, 0, len(m.board.controls))
	for i, c := range m.board.controls {
		style := otherGroupStyle
		if m.board.isCurrent(c.id) {
			style = currentGroupStyle
		}
		prefix := "  "
		if i == m.focus {
			prefix = focusMarker
		}
		hotkey := " "
		if i < 9 {
			hotkey = fmt.Sprintf("%d", i+1)
		}
		buttons = append(buttons, fmt.Sprintf("%s%s %s %s",
			prefix, mutedStyle.Render(hotkey), style.Render(c.label),
			mutedStyle.Render(fmt.Sprintf("(%d)", m.board.members(c.id)))))
	}
	groups := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{titleStyle.Render("Categories"), ""}, buttons...)...)

	body := lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", groups)

	lines := []string{
		titleStyle.Render("Manual data categorizer"),
		successStyle.Render(progressBar(f.Labeled, f.Total, 28)) + mutedStyle.Render(" labeled"),
		"",
		body,
	}
	if n := m.board.notice; n != nil {
		style := noticeStyle
		if n.Level == controller.LevelError {
			style = errorStyle
		}
		lines = append(lines, "", style.Render(n.Text))
	}
	if m.prompt != promptNone {
		title := "Add category"
		if m.prompt == promptDeleteGroup {
			title = "Delete category"
		}
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		lines = append(lines, bar.Render(title+"  "+mutedStyle.Render("(esc to cancel)")+"\n"+m.ti.View()))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return panelString(strings.Join(lines, "\n"))
}
