package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-minisite/minisite/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print site routes, config, and cache summary",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)

		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("📁 Templates Directory:", config.TemplatesDir)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println()

		fmt.Println("🗂️  Routes:")
		for _, summary := range core.RouteSummaries() {
			fmt.Println("  ", summary)
		}
		fmt.Println()

		templateCount := 0
		filepath.Walk(config.TemplatesDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				templateCount++
			}
			return nil
		})

		cacheCount := 0
		filepath.Walk(config.OutputDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				cacheCount++
			}
			return nil
		})

		fmt.Println("📦 Templates Found:", templateCount)
		fmt.Println("💾 Cached Pages:", cacheCount)

		return nil
	},
}
