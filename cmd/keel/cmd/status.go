package cmd

import (
	"fmt"

	"github.com/go-keel/keel/cmd/keel/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project configuration",
		Long: `Show the resolved configuration of the current Keel project.

Reads go.mod and the optional keel.yaml, then prints the app identity,
window geometry, and registered fonts with defaults filled in.`,
		Usage: "keel status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Printf("Module:  %s\n", cfg.ModulePath)
	fmt.Printf("Root:    %s\n", cfg.Root)
	fmt.Println()
	fmt.Printf("Window:  %q %gx%g\n", cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight)

	if len(cfg.Fonts) > 0 {
		fmt.Println()
		fmt.Println("Fonts:")
		for _, f := range cfg.Fonts {
			fmt.Printf("  %-12s %s\n", f.Name+":", f.Path)
		}
	}

	return nil
}
