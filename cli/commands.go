package cli

import (
	"github.com/go-minisite/minisite"

	"github.com/urfave/cli/v2"
)

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Serve the site in dev mode (no caching, live reload)",
	Action: func(c *cli.Context) error {
		cfg := minisite.RuntimeConfig{
			Env:         "dev",
			EnableCache: false,
			Port:        8080,
		}
		minisite.Start(cfg)
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Serve the site in production mode (caching on by default)",
	Action: func(c *cli.Context) error {
		cfg := minisite.RuntimeConfig{
			Env:         "prod",
			EnableCache: true,
			Port:        8080,
		}
		minisite.Start(cfg)
		return nil
	},
}
