// Package cli implements the command-line interface for cubelab.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelab",
	Short: "Interactive NxNxN cube playground",
	Long: `Cubelab - an interactive NxNxN cube playground for the terminal.

Play with cubes from 2x2x2 up to 10x10x10: click a face, swipe with the
arrow keys to turn slices, shuffle, and watch the engine animate the cube
back to solved. A GoCube smart cube can drive the virtual cube over
Bluetooth, and every session is recorded for later statistics.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubelab/cubelab.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the session database at the configured path and applies
// migrations.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
