package main

import (
	"os"

	"github.com/chazuruo/histclean/internal/cli"
	hcerrors "github.com/chazuruo/histclean/internal/errors"
	"github.com/chazuruo/histclean/internal/report"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(cli.VersionInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	})

	if err := rootCmd.Execute(); err != nil {
		report.NewPrinter(os.Stderr, report.Options{}).Error(err)
		os.Exit(hcerrors.ExitCode(err))
	}
}
