package main

import (
	"log"
	"os"

	minicli "github.com/go-minisite/minisite/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "minisite",
		Usage: "A tiny dynamic HTML site served by Go",
		Commands: []*clilib.Command{
			minicli.InitCommand,
			minicli.DevCommand,
			minicli.ProdCommand,
			minicli.CheckCommand,
			minicli.InfoCommand,
			minicli.CleanCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
