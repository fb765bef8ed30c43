package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/app/storage"
	"github.com/seamusw/cubelab/internal/app/tui"
	"github.com/seamusw/cubelab/internal/motion"
	"github.com/seamusw/cubelab/internal/smartcube"
)

var (
	playSize      int
	playSmartcube bool
	playNoRecord  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session in the terminal",
	Long: `Start an interactive TUI session.

Keyboard shortcuts:
  click   - select a face (mouse required)
  arrows  - turn the selected slice, or orbit when nothing is selected
  h/j/k/l - orbit the camera
  s       - shuffle
  S       - animate the cube back to solved
  u       - hint the move that undoes the last one
  t       - cycle color themes
  +/-     - grow or shrink the cube
  q/Esc   - quit

With --smartcube, physical turns on a paired GoCube drive the virtual
cube, and shaking the cube shuffles it.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playSize, "size", 3, "Cube size (2-10)")
	playCmd.Flags().BoolVar(&playSmartcube, "smartcube", false, "Drive the cube from a GoCube over Bluetooth")
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Disable session recording")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	eng, err := cubelab.New(playSize)
	if err != nil {
		return fmt.Errorf("invalid cube size %d: %w", playSize, err)
	}

	var repo *storage.SessionRepository
	if !playNoRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewSessionRepository(db)
	}

	model := tui.NewModel(eng, repo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if playSmartcube {
		src, err := connectSmartcube(p)
		if err != nil {
			return err
		}
		defer src.Close()
		if verbose {
			fmt.Printf("Connected to %s\n", src.Name())
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// connectSmartcube pairs with a GoCube and forwards its turns and shake
// gestures to the running program.
func connectSmartcube(p *tea.Program) (*smartcube.Source, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Scanning for GoCube...")
	src, err := smartcube.Connect(ctx, 20*time.Second)
	if err != nil {
		return nil, fmt.Errorf("smart cube connection failed: %w", err)
	}

	// The GoCube reports orientation, not acceleration, so the detector
	// needs the quaternion-scale threshold.
	shake := motion.NewDetector(motion.OrientationThreshold, 0)
	shake.OnShake(func() {
		p.Send(tui.ShakeMsg{})
	})

	src.OnMove(func(m cubelab.Move) {
		p.Send(tui.SmartMoveMsg{Move: m})
	})
	src.OnOrientation(func(x, y, z, w float64) {
		shake.Sample(x, y, z, time.Now())
	})

	return src, nil
}
