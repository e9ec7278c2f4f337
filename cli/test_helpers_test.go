package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/go-minisite/minisite/core"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func overrideLoadConfig(outputDir string, testFn func()) {
	original := core.LoadConfig
	core.LoadConfig = func(path string) *core.Config {
		return &core.Config{
			OutputDir:    outputDir,
			TemplatesDir: "templates",
			PublicDir:    "public",
		}
	}
	defer func() { core.LoadConfig = original }()

	testFn()
}
