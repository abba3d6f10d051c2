package main

import (
	"fmt"
	"os"
	"strings"

	"jobboard/internal/cli"
	"jobboard/internal/config"
	"jobboard/internal/pkg/logger"
	"jobboard/internal/ui"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	root := cli.NewCLI()
	versionString := buildVersion()

	parser, err := kong.New(root,
		kong.Name("jobboard"),
		kong.Description("Browse the job board from the terminal."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": versionString},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fallbackUI := ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(os.Getenv("JOBBOARD_COLOR")), false)
		fallbackUI.Errorf("%v", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if root.SeedFile != "" {
		cfg.Jobs.SeedFile = root.SeedFile
	}
	if root.NoDefaults {
		cfg.Jobs.SeedDefaults = false
	}

	level := "warn"
	if root.Verbose {
		level = "debug"
	}
	log := logger.New("", level, false)

	userInterface := ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(root.Color), root.JSON)
	runCtx := &cli.Context{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		UI:         userInterface,
		Config:     cfg,
		Logger:     log,
		JSONOutput: root.JSON,
		Version:    versionString,
	}

	if err := kctx.Run(runCtx); err != nil {
		userInterface.Errorf("%v", err)
		os.Exit(1)
	}
}

func buildVersion() string {
	if strings.TrimSpace(commit) == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
