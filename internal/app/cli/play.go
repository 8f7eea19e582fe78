package cli

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

var playScrambleLength int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the cube interactively",
	Long: `Interactive terminal cube.

Keys:
  u d l r f b    clockwise face turns
  U D L R F B    counter-clockwise face turns
  s              scramble
  v              solve (animated)
  x              reset to solved
  q              quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playScrambleLength, "scramble-length", 25, "Moves per scramble")
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

type playModel struct {
	tracker *cubesolver.Tracker
	facelet *cube.Cube
	rng     *rand.Rand

	solving  []cubesolver.Move // remaining animated solution
	lastMove string
	status   string
}

type solveStepMsg struct{}

func newPlayModel() *playModel {
	return &playModel{
		tracker: cubesolver.NewTracker(),
		facelet: cube.New(),
		rng: rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		)),
		status: "ready",
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "s":
			if m.solving != nil {
				return m, nil
			}
			moves := m.tracker.Scramble(m.rng, playScrambleLength)
			m.facelet.ApplyMoves(moves)
			m.lastMove = cubesolver.FormatMoves(moves)
			m.status = "scrambled"

		case "x":
			m.tracker.Reset()
			m.facelet = cube.New()
			m.solving = nil
			m.lastMove = ""
			m.status = "reset"

		case "v":
			if m.solving != nil || m.tracker.IsSolved() {
				return m, nil
			}
			solution, err := m.tracker.Solve(context.Background())
			if err != nil {
				m.status = "solve failed: " + err.Error()
				return m, nil
			}
			m.solving = solution
			m.status = fmt.Sprintf("solving (%d moves)", len(solution))
			return m, solveTick()

		default:
			if m.solving != nil {
				return m, nil
			}
			if mv, ok := keyToMove(key); ok {
				m.apply(mv)
				m.status = "ready"
			}
		}

	case solveStepMsg:
		if len(m.solving) == 0 {
			m.solving = nil
			m.status = "solved"
			return m, nil
		}
		m.apply(m.solving[0])
		m.solving = m.solving[1:]
		if len(m.solving) == 0 {
			m.solving = nil
			m.status = "solved"
			return m, nil
		}
		return m, solveTick()
	}

	return m, nil
}

func solveTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return solveStepMsg{}
	})
}

func (m *playModel) apply(mv cubesolver.Move) {
	if err := m.tracker.Apply(mv); err != nil {
		m.status = err.Error()
		return
	}
	m.facelet.Apply(mv)
	m.lastMove = mv.Notation()
}

// keyToMove maps a keypress to a face turn: lowercase clockwise,
// uppercase counter-clockwise.
func keyToMove(key string) (cubesolver.Move, bool) {
	if len(key) != 1 {
		return cubesolver.Move{}, false
	}
	turn := cubesolver.CW
	upper := strings.ToUpper(key)
	if key == upper {
		turn = cubesolver.CCW
	}
	switch upper {
	case "U", "D", "L", "R", "F", "B":
		return cubesolver.Move{Face: cubesolver.Face(upper), Turn: turn}, true
	}
	return cubesolver.Move{}, false
}

func (m *playModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesolver"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.facelet))
	b.WriteByte('\n')

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("progress %.0f%%", m.tracker.Progress()*100)))
	}
	b.WriteByte('\n')
	if m.lastMove != "" {
		b.WriteString(movesStyle.Render("last: " + m.lastMove))
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("u/d/l/r/f/b turn  shift=inverse  s scramble  v solve  x reset  q quit"))
	b.WriteByte('\n')
	return b.String()
}
