package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long: `Shows the registered game modes and the levels of the bundled set,
or of the directory given with --levels.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	infos, err := levelLoader().List()
	if err != nil {
		exitErr(err)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()

	if len(infos) == 0 {
		fmt.Println("  No levels found.")
		return
	}

	fmt.Printf("  %-4s  %-24s  %s\n", "ID", "Title", "File")
	fmt.Printf("  %-4s  %-24s  %s\n", "--", "-----", "----")
	for _, info := range infos {
		fmt.Printf("  %-4d  %-24s  %s\n", info.ID, info.Title, info.Path)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <level>' to start at a level.")
}
