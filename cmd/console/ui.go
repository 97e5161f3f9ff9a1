package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/detective-quest/internal/store"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/session"
)

const placeholderText = "Name the culprit..."

// phase of the interactive session the UI is in.
type phase int

const (
	phaseExploring phase = iota
	phaseAccusing
	phaseVerdict
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	cs     store.CaseStore
	logger *slog.Logger

	sess       *session.Session
	phase      phase
	verdict    *session.Verdict
	transcript []string

	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error

	// Case selection state
	showCaseModal bool
	caseNames     []string
	caseTitles    map[string]string
	selectedCase  int
	loadingCases  bool

	// Quit confirmation state
	showQuitModal bool
}

type casesLoadedMsg struct {
	names  []string
	titles map[string]string
	err    error
}

type caseLoadedMsg struct {
	c   *casefile.Case
	err error
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	clueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	suspectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	verdictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

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

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// titleCaser display-cases Portuguese room and case names. Presentation only;
// every comparison the engine makes stays byte-wise exact.
var titleCaser = cases.Title(language.BrazilianPortuguese)

func NewConsoleUI(cs store.CaseStore, logger *slog.Logger) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 100
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		cs:            cs,
		logger:        logger,
		textarea:      ta,
		logViewport:   logVp,
		metaViewport:  metaVp,
		ready:         false,
		showCaseModal: true,
		loadingCases:  true,
		selectedCase:  0,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return m.loadCases()
}

func (m ConsoleUI) loadCases() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		titles, err := m.cs.ListCases(ctx)
		if err != nil {
			return casesLoadedMsg{err: err}
		}
		if len(titles) == 0 {
			return casesLoadedMsg{err: fmt.Errorf("no cases available")}
		}

		var names []string
		for name := range titles {
			names = append(names, name)
		}
		sort.Strings(names)
		return casesLoadedMsg{names: names, titles: titles}
	}
}

func (m ConsoleUI) openCase(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := m.cs.GetCase(ctx, name)
		return caseLoadedMsg{c, err}
	}
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle case modal first
	if m.showCaseModal {
		return m.updateCaseModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeTranscript()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		}

		switch m.phase {
		case phaseExploring:
			return m.updateExploring(msg)
		case phaseAccusing:
			if msg.Type == tea.KeyEnter {
				accused := strings.TrimSpace(m.textarea.Value())
				m.textarea.Reset()
				m.textarea.Blur()
				v := m.sess.Accuse(accused)
				m.verdict = &v
				m.phase = phaseVerdict
				m.appendVerdict(accused, v)
				m.writeTranscript()
				m.metaViewport.SetContent(m.writeMetadata())
				return m, nil
			}
		case phaseVerdict:
			if msg.String() == "q" || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// updateExploring maps keys to navigation commands while the mansion is
// being walked.
func (m ConsoleUI) updateExploring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd session.Command
	switch msg.String() {
	case "left", "l", "e":
		cmd = session.GoLeft
	case "right", "r", "d":
		cmd = session.GoRight
	case "q", "s":
		cmd = session.Quit
	default:
		return m, nil
	}

	visit, err := m.sess.Step(cmd)
	switch {
	case err != nil:
		m.transcript = append(m.transcript, errorStyle.Render("There is no room in that direction."))
	case visit == nil:
		m.transcript = append(m.transcript, "You leave the exploration.")
	default:
		m.appendVisit(visit)
	}

	if m.sess.Over() {
		m.beginAccusation()
		m.writeTranscript()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, textarea.Blink
	}

	m.writeTranscript()
	m.metaViewport.SetContent(m.writeMetadata())
	return m, nil
}

// beginAccusation switches the UI into the accusation phase, listing the
// collected evidence in ascending order.
func (m *ConsoleUI) beginAccusation() {
	m.phase = phaseAccusing

	m.transcript = append(m.transcript, "", titleStyle.Render("COLLECTED EVIDENCE"))
	if m.sess.ClueCount() == 0 {
		m.transcript = append(m.transcript, "No clues collected.")
	} else {
		for clue := range m.sess.Clues() {
			m.transcript = append(m.transcript, clueStyle.Render("• "+clue))
		}
	}
	m.transcript = append(m.transcript, "", "Whom do you accuse? Leave empty and press Enter for no accusation.")
	m.textarea.Focus()
}

func (m *ConsoleUI) appendVisit(v *session.Visit) {
	m.transcript = append(m.transcript, "", roomStyle.Render("You are in: "+v.Room.ID()))
	switch {
	case v.Clue == "":
		// Nothing to find in this room.
	case v.AlreadyCollected:
		m.transcript = append(m.transcript, fmt.Sprintf("The clue %q is here, but you have already collected it.", v.Clue))
	default:
		m.transcript = append(m.transcript, clueStyle.Render(fmt.Sprintf("You found a clue: %q", v.Clue)))
		if v.Suspect != "" {
			m.transcript = append(m.transcript, suspectStyle.Render("It implicates "+v.Suspect+"."))
		}
	}
	if v.Room.IsLeaf() {
		m.transcript = append(m.transcript, "No more paths to follow. The exploration is over.")
	}
}

func (m *ConsoleUI) appendVerdict(accused string, v session.Verdict) {
	m.transcript = append(m.transcript, "")
	if accused == "" {
		m.transcript = append(m.transcript, verdictStyle.Render("No accusation made. The case remains open."))
	} else {
		m.transcript = append(m.transcript, fmt.Sprintf("%d collected clue(s) implicate %s.", v.Count, v.Accused))
		if v.Sustained {
			m.transcript = append(m.transcript, verdictStyle.Render(fmt.Sprintf("The accusation is sustained: %s is the culprit!", v.Accused)))
		} else {
			m.transcript = append(m.transcript, verdictStyle.Render(fmt.Sprintf("Insufficient evidence against %s.", v.Accused)))
		}
	}
	m.transcript = append(m.transcript, "", promptStyle.Render("Press Enter or q to leave the mansion."))
}

func (m *ConsoleUI) layout() {
	logWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - logWidth - 6

	m.logViewport.Width = logWidth - 2
	m.logViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(logWidth - 4)
}

// writeTranscript reformats the whole transcript for the current width.
func (m *ConsoleUI) writeTranscript() {
	logWidth := m.logViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("DETECTIVE QUEST") + "\n\n")
	if m.sess != nil {
		content.WriteString("Case: " + titleCaser.String(m.sess.Case().Title) + "\n\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(logWidth-6, 1))) + "\n")

	for _, line := range m.transcript {
		content.WriteString(wordwrap.String(line, max(logWidth, 20)) + "\n")
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("CASE BOARD") + "\n\n")

	if m.sess == nil {
		content.WriteString("No session.\n")
		return content.String()
	}

	content.WriteString("Session:\n")
	content.WriteString(m.sess.ID().String()[:8] + "...\n\n")

	content.WriteString("Current room:\n")
	content.WriteString(m.sess.Current().ID() + "\n\n")

	content.WriteString(fmt.Sprintf("Evidence (%d):\n", m.sess.ClueCount()))
	if m.sess.ClueCount() == 0 {
		content.WriteString("None yet\n")
	} else {
		for clue := range m.sess.Clues() {
			content.WriteString("• " + clue + "\n")
		}
	}

	if m.verdict != nil && m.verdict.Accused != "" {
		content.WriteString("\nVerdict:\n")
		if m.verdict.Sustained {
			content.WriteString(fmt.Sprintf("%s, on %d clues\n", m.verdict.Accused, m.verdict.Count))
		} else {
			content.WriteString(fmt.Sprintf("open (%d clue(s) on %s)\n", m.verdict.Count, m.verdict.Accused))
		}
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	if m.phase == phaseExploring {
		content.WriteString("• l / e: go left\n")
		content.WriteString("• r / d: go right\n")
		content.WriteString("• q / s: stop exploring\n")
	}
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func (m ConsoleUI) updateCaseModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case casesLoadedMsg:
		m.loadingCases = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.caseNames = msg.names
			m.caseTitles = msg.titles
		}

	case caseLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		sess, visit, err := session.New(msg.c, m.logger)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.sess = sess
		m.showCaseModal = false
		if msg.c.Intro != "" {
			m.transcript = append(m.transcript, msg.c.Intro)
		}
		m.appendVisit(visit)
		if m.sess.Over() {
			m.beginAccusation()
		}
		if m.width > 0 && m.height > 0 {
			m.layout()
			m.ready = true
		}
		m.writeTranscript()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, textarea.Blink

	case tea.KeyMsg:
		if m.loadingCases || m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedCase > 0 {
				m.selectedCase--
			}
		case tea.KeyDown:
			if m.selectedCase < len(m.caseNames)-1 {
				m.selectedCase++
			}
		case tea.KeyEnter:
			if len(m.caseNames) > 0 {
				return m, m.openCase(m.caseNames[m.selectedCase])
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if !m.showCaseModal && m.phase == phaseAccusing {
					m.textarea.Focus()
					return m, textarea.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Mansion?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to abandon the investigation?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderCaseModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingCases {
		content.WriteString(modalTitleStyle.Render("Loading Cases..."))
		content.WriteString("\n\n")
		content.WriteString(promptStyle.Render("Fetching the case catalog..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load cases: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Case"))
		content.WriteString("\n\n")

		for i, name := range m.caseNames {
			label := titleCaser.String(m.caseTitles[name])
			if i == m.selectedCase {
				content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
			} else {
				content.WriteString(modalItemStyle.Render("  " + label))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showCaseModal {
		return m.renderCaseModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - logWidth - 6

	var input string
	if m.phase == phaseAccusing {
		input = m.textarea.View()
	} else {
		input = promptStyle.Render(m.footerHint())
	}

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"", // Spacing above the input line
			separatorStyle.Render(strings.Repeat("─", max(logWidth-4, 1))),
			input,
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 3).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}

func (m ConsoleUI) footerHint() string {
	if m.phase == phaseVerdict {
		return "Press Enter or q to leave the mansion."
	}
	return "Navigate with l / r. Press q to stop and accuse."
}
