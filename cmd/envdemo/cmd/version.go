package cmd

import (
	"fmt"

	"github.com/go-drift/uienv/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the envdemo version and the uienv.yaml schema it reads.",
		Usage: "envdemo version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Fprintf(stdout, "envdemo version %s (built %s), config schema %s\n", Version, BuildTime, config.CurrentSchema)
	return nil
}
