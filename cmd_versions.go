package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cluttrdev/cli"
	"github.com/pterm/pterm"

	"github.com/feldspar-io/glinstall/internal/metaerr"
)

func newVersionsCmd() *cli.Command {
	cfg := versionsCmd{}

	fs := flag.NewFlagSet("glinstall versions", flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &cli.Command{
		Name:       "versions",
		ShortHelp:  "List the project's released versions.",
		ShortUsage: "glinstall versions [OPTION]...",
		Flags:      fs,
		Exec:       cfg.Exec,
	}
}

type versionsCmd struct {
	rootCmd

	constraint string
}

func (c *versionsCmd) RegisterFlags(fs *flag.FlagSet) {
	c.rootCmd.RegisterFlags(fs)

	fs.StringVar(&c.constraint, "constraint", "", "Only list versions matching this semver constraint.")
}

func (c *versionsCmd) Exec(ctx context.Context, args []string) (err error) {
	c.initLogging()

	defer func() {
		if err != nil && c.logFile != os.Stderr {
			err = fmt.Errorf("%w\nSee %s for details", err, c.logFile.Name())
		}
	}()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	client := newReleaseClient(cfg.baseURL())

	spinner, _ := pterm.DefaultSpinner.Start("Fetching releases")
	tags, err := client.ListTags(ctx, cfg.Project)
	if err != nil {
		slog.With("project", cfg.Project, "error", err).
			With(metaerr.GetMetadata(err)...).
			Error("failed to list versions")
		spinner.Fail()
		return err
	}
	spinner.Success()

	tags, err = filterTags(tags, c.constraint)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}
