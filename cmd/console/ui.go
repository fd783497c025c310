package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/textfilter"
	"github.com/jwebster45206/adventure-engine/pkg/world"
	"github.com/muesli/reflow/wordwrap"
)

const PlaceHolderText = "north, attack, drink, look..."

const helpText = `Commands:
• n, s, e, w or "go <direction>" - Move
• attack [weapon id] - Attack the monster here
• drink [potion id] - Drink a healing potion
• look - Describe this location
• /copy or Ctrl+Y - Copy the log to the clipboard
• /help - Show this help
• Ctrl+C - Quit (your game is saved)`

// entry is one block of the adventure log.
type entry struct {
	kind state.EventKind
	text string
}

const (
	kindInput  state.EventKind = "input"
	kindSystem state.EventKind = "system"
	kindError  state.EventKind = "error"
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game          *Game
	log           []entry
	logViewport   viewport.Model
	input         textinput.Model
	ready         bool
	width         int
	height        int
	status        string
	showQuitModal bool
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)

	statsPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	combatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	rewardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewConsoleUI(game *Game, opening []state.Event) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Focus()
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	m := ConsoleUI{
		game:        game,
		input:       ti,
		logViewport: vp,
	}
	m.appendEvents(opening)
	return m
}

func (m *ConsoleUI) appendEvents(events []state.Event) {
	for _, ev := range events {
		m.log = append(m.log, entry{kind: ev.Kind, text: ev.Message})
	}
}

func styleFor(kind state.EventKind) lipgloss.Style {
	switch kind {
	case state.EventArrived:
		return locationStyle
	case state.EventPlayerAttack, state.EventMonsterAttack, state.EventMonsterSighted, state.EventPlayerDefeated:
		return combatStyle
	case state.EventQuestCompleted, state.EventReward, state.EventLoot, state.EventMonsterDefeated, state.EventPotionUsed:
		return rewardStyle
	case kindInput:
		return userStyle
	case kindError, state.EventEntryDenied:
		return errorStyle
	}
	return lipgloss.NewStyle()
}

// writeLog renders the whole log for the current viewport width.
func (m *ConsoleUI) writeLog() {
	width := m.logViewport.Width - 2
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	for _, e := range m.log {
		text := wordwrap.String(e.text, width)
		if e.kind == kindInput {
			text = "> " + text
		}
		content.WriteString(styleFor(e.kind).Render(text) + "\n\n")
	}
	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

// plainLog is the log without styling, for the clipboard.
func (m *ConsoleUI) plainLog() string {
	lines := make([]string, 0, len(m.log))
	for _, e := range m.log {
		if e.kind == kindInput {
			lines = append(lines, "> "+e.text)
			continue
		}
		lines = append(lines, e.text)
	}
	return strings.Join(lines, "\n\n")
}

func writeStats(snap state.Snapshot) string {
	var content strings.Builder
	p := snap.Player

	content.WriteString(titleStyle.Render("PLAYER") + "\n")
	content.WriteString(fmt.Sprintf("HP: %d/%d\n", p.HP, p.MaxHP))
	content.WriteString(fmt.Sprintf("Gold: %d\n", p.Gold))
	content.WriteString(fmt.Sprintf("XP: %d\n", p.XP))
	content.WriteString(fmt.Sprintf("Level: %d\n\n", p.Level))

	content.WriteString(titleStyle.Render("LOCATION") + "\n")
	content.WriteString(snap.Location.Name + "\n")
	if len(snap.Location.Exits) > 0 {
		exits := make([]string, 0, len(snap.Location.Exits))
		for _, dir := range world.Directions {
			if _, ok := snap.Location.Exits[dir]; ok {
				exits = append(exits, textfilter.Title(string(dir)))
			}
		}
		content.WriteString("Exits: " + strings.Join(exits, ", ") + "\n")
	}
	content.WriteString("\n")

	if snap.Encounter != nil {
		content.WriteString(titleStyle.Render("MONSTER") + "\n")
		content.WriteString(combatStyle.Render(fmt.Sprintf("%s  HP %d/%d", snap.Encounter.Name, snap.Encounter.HP, snap.Encounter.MaxHP)) + "\n\n")
	}

	content.WriteString(titleStyle.Render("INVENTORY") + "\n")
	if len(p.Inventory) == 0 {
		content.WriteString("Empty\n")
	}
	for _, item := range p.Inventory {
		content.WriteString(fmt.Sprintf("• [%d] %s x%d\n", item.ItemID, item.Name, item.Quantity))
	}
	content.WriteString("\n")

	content.WriteString(titleStyle.Render("QUESTS") + "\n")
	if len(p.Quests) == 0 {
		content.WriteString("None\n")
	}
	quests := append([]state.QuestView(nil), p.Quests...)
	sort.SliceStable(quests, func(i, j int) bool { return !quests[i].Completed && quests[j].Completed })
	for _, q := range quests {
		mark := "•"
		if q.Completed {
			mark = "✓"
		}
		content.WriteString(fmt.Sprintf("%s %s\n", mark, q.Name))
	}
	return content.String()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.7) - 4
		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 5
		m.input.Width = logWidth - 6
		m.ready = true
		m.writeLog()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			m.copyLog()
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			m.status = ""
			if strings.HasPrefix(input, "/") {
				m.handleCommand(input)
			} else {
				m.play(input)
			}
			m.writeLog()
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *ConsoleUI) play(input string) {
	m.log = append(m.log, entry{kind: kindInput, text: input})
	events, err := m.game.Play(context.Background(), input)
	m.appendEvents(events)
	if err != nil {
		m.log = append(m.log, entry{kind: kindError, text: describeError(err)})
	}
}

func (m *ConsoleUI) handleCommand(input string) {
	switch strings.ToLower(input) {
	case "/help":
		m.log = append(m.log, entry{kind: kindSystem, text: helpText})
	case "/copy":
		m.copyLog()
	default:
		m.log = append(m.log, entry{kind: kindError, text: describeError(errUnknownCommand)})
	}
}

func (m *ConsoleUI) copyLog() {
	if err := clipboard.WriteAll(m.plainLog()); err != nil {
		m.status = errorStyle.Render("Copy failed: " + err.Error())
		return
	}
	m.status = rewardStyle.Render("Log copied to clipboard")
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.input.Focus()
				return m, textinput.Blink
			}
		}
	}
	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress will be saved.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.7) - 4
	statsWidth := m.width - logWidth - 4

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			promptStyle.Render(strings.Repeat("─", max(logWidth-4, 1))),
			m.input.View(),
			m.status,
		),
	)
	statsPanel := statsPanelStyle.Width(statsWidth).Render(writeStats(m.game.Snapshot()))

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, statsPanel)
}
