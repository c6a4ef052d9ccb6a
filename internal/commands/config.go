package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/noteshift/internal/config"
	"github.com/gerunddev/noteshift/internal/styles"
)

// Config prints the resolved configuration and where it lives.
func Config() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to load config: "+err.Error()))
		os.Exit(1)
	}

	value := styles.NormalTextStyle

	fmt.Println(styles.TitleStyle.Render("noteshift configuration"))
	fmt.Println()
	fmt.Printf("  Default directory: %s\n", value.Render(cfg.DefaultDir))
	fmt.Printf("  Wrap width:        %s\n", value.Render(fmt.Sprintf("%d", cfg.WrapWidth)))
	fmt.Printf("  File extensions:   %s\n", value.Render(strings.Join(cfg.FileExtensions, ", ")))
	fmt.Printf("  Log file:          %s\n", value.Render(cfg.LogFile))
	fmt.Println()
	fmt.Printf("  Config file: %s\n", styles.DimStyle.Render(config.ConfigPath()))
	fmt.Printf("  State file:  %s\n", styles.DimStyle.Render(config.StateFilePath()))
}
