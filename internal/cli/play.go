package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var (
	playLast    bool
	playMoves   string
	playTurnMs  int
	playDelayMs int
)

var playCmd = &cobra.Command{
	Use:   "play [notation]",
	Short: "Step through a move sequence interactively",
	Long: `Start an interactive TUI that animates a move sequence on a cube state.

The state is a 54-character notation argument, the most recent recorded
scan with --last, or the solved cube when neither is given. The --moves
sequence is loaded but not applied; step through it or let it play.

Keyboard shortcuts:
  space   - Play / pause
  n / →   - Step forward
  p / ←   - Step backward
  r       - Jump back to the start
  q/Esc   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playLast, "last", false, "Start from the most recent recorded scan")
	playCmd.Flags().StringVar(&playMoves, "moves", "", "Move sequence to load")
	playCmd.Flags().IntVar(&playTurnMs, "turn-ms", 250, "Milliseconds per turn animation")
	playCmd.Flags().IntVar(&playDelayMs, "delay-ms", 400, "Milliseconds between moves during playback")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time

// Model
type playModel struct {
	engine *cubevision.MoveEngine

	startTime time.Time
	elapsed   time.Duration

	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(engine *cubevision.MoveEngine) *playModel {
	return &playModel{engine: engine}
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.err = nil
			if m.engine.Playing() {
				m.engine.Pause()
			} else {
				if m.startTime.IsZero() {
					m.startTime = time.Now()
				}
				m.engine.Play()
			}

		case "n", "right":
			if _, err := m.engine.StepNext(); err != nil {
				m.err = err
			} else {
				m.err = nil
			}

		case "p", "left":
			if _, err := m.engine.StepPrev(); err != nil {
				m.err = err
			} else {
				m.err = nil
			}

		case "r":
			if err := m.engine.ResetToStart(); err != nil {
				m.err = err
			} else {
				m.err = nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.engine.Tick(time.Time(msg))
		if !m.startTime.IsZero() && m.engine.Busy() {
			m.elapsed = time.Since(m.startTime)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// historyLine renders the loaded sequence with the cursor position
// highlighted, windowed so long sequences stay on one line.
func (m *playModel) historyLine() string {
	history := m.engine.History()
	if len(history) == 0 {
		return statusStyle.Render("(no moves loaded)")
	}

	cursor := m.engine.Cursor()

	const window = 12
	start := 0
	if cursor > window/2 {
		start = cursor - window/2
	}
	end := start + window
	if end > len(history) {
		end = len(history)
		if end-window > 0 {
			start = end - window
		} else {
			start = 0
		}
	}

	var parts []string
	if start > 0 {
		parts = append(parts, statusStyle.Render("..."))
	}
	for i := start; i < end; i++ {
		text := history[i].Notation()
		switch {
		case i == cursor:
			parts = append(parts, activeStyle.Render(text))
		case i < cursor:
			parts = append(parts, moveStyle.Render(text))
		default:
			parts = append(parts, statusStyle.Render(text))
		}
	}
	if end < len(history) {
		parts = append(parts, statusStyle.Render("..."))
	}

	return strings.Join(parts, " ")
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("Cubevision Player"))
	b.WriteString("\n\n")

	// Cube net
	b.WriteString(renderNet(m.engine.Model()))
	b.WriteString("\n")

	// Playback status
	done := m.engine.Cursor() + 1
	total := len(m.engine.History())
	switch {
	case m.engine.State() == cubevision.Animating:
		move, _ := m.engine.CurrentMove()
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			activeStyle.Render("TURNING"),
			moveStyle.Render(move.Notation()),
			progressBar(m.engine.Progress(), 20)))
	case m.engine.Playing():
		b.WriteString(activeStyle.Render("PLAYING"))
		b.WriteString("\n")
	case total > 0 && done == total:
		b.WriteString(moveStyle.Render("DONE"))
		b.WriteString("\n")
	default:
		b.WriteString(statusStyle.Render("PAUSED"))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Move %d/%d", done, total))
	if m.elapsed > 0 {
		b.WriteString(fmt.Sprintf("  (%s)", formatDuration(m.elapsed)))
	}
	if m.engine.Model().IsSolved() {
		b.WriteString("  ")
		b.WriteString(moveStyle.Render("SOLVED"))
	}
	b.WriteString("\n\n")

	// Sequence
	b.WriteString(m.historyLine())
	b.WriteString("\n\n")

	// Error
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	// Help
	b.WriteString(helpStyle.Render("space play/pause · n/→ step · p/← back · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	var model *cubevision.CubeModel

	switch {
	case len(args) > 0 || playLast:
		notation, _, err := resolveNotation(args, playLast)
		if err != nil {
			return err
		}
		model, err = cubevision.ModelFromNotation(notation)
		if err != nil {
			return err
		}
	default:
		model = cubevision.NewCubeModel()
	}

	engine := cubevision.NewMoveEngine(model,
		cubevision.WithTurnDuration(time.Duration(playTurnMs)*time.Millisecond),
		cubevision.WithPlayDelay(time.Duration(playDelayMs)*time.Millisecond),
	)

	if playMoves != "" {
		moves, err := cubevision.ParseMoves(playMoves)
		if err != nil {
			return err
		}
		engine.Enqueue(moves...)
	}

	p := tea.NewProgram(newPlayModel(engine), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
