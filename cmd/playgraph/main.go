package main

import (
	"fmt"
	"os"

	"github.com/roach88/playgraph/internal/cli"
	"github.com/roach88/playgraph/internal/logger"
)

func main() {
	defer logger.Sync()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
