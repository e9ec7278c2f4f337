package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-minisite/minisite/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate that every template parses and renders",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)
		renderer := core.NewRenderer(*config, "dev")

		var failed bool
		checked := 0

		filepath.Walk(config.TemplatesDir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(path, ".html") {
				return nil
			}

			checked++
			rel, _ := filepath.Rel(config.TemplatesDir, path)
			rel = filepath.ToSlash(rel)

			if _, renderErr := renderer.Render(rel, map[string]interface{}{}); renderErr != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", rel, renderErr)
				return nil
			}

			fmt.Printf("✅ %s\n", rel)
			return nil
		})

		if checked == 0 {
			fmt.Println("🧐 No templates found in", config.TemplatesDir)
			return nil
		}

		if failed {
			return cli.Exit("some templates failed to compile", 1)
		}

		fmt.Println("✅ All templates validated successfully.")
		return nil
	},
}
