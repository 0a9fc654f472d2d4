package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cluttrdev/cli"
	"github.com/pterm/pterm"

	"github.com/feldspar-io/glinstall/internal/metaerr"
)

func newInstallCmd() *cli.Command {
	cfg := installCmd{}

	fs := flag.NewFlagSet("glinstall install", flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &cli.Command{
		Name:       "install",
		ShortHelp:  "Install the project's released binary.",
		ShortUsage: "glinstall install [OPTION]...",
		Flags:      fs,
		Exec:       cfg.Exec,
	}
}

type installCmd struct {
	rootCmd

	installDir string
	tag        string
}

func (c *installCmd) RegisterFlags(fs *flag.FlagSet) {
	c.rootCmd.RegisterFlags(fs)

	fs.StringVar(&c.installDir, "install-dir", "", "Override the installation directory.")
	fs.StringVar(&c.tag, "tag", "", "Install the release with this tag instead of the latest.")
}

func (c *installCmd) Exec(ctx context.Context, args []string) (err error) {
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
	if c.installDir != "" {
		cfg.InstallDir = expandPath(c.installDir)
	}

	if err := runInstall(ctx, cfg, c.tag); err != nil {
		slog.With("project", cfg.Project, "error", err).
			With(metaerr.GetMetadata(err)...).
			Error("installation failed")
		return err
	}
	return nil
}

// runInstall performs one installer run against the given settings: check
// the environment, resolve the release and its artifact for this machine,
// then download, verify, extract and install inside a scoped workspace.
// Every failure is terminal; nothing is retried.
func runInstall(ctx context.Context, cfg Config, tag string) error {
	// 1. environment
	if err := preflight(cfg); err != nil {
		return err
	}
	pterm.Success.Println("Environment checks passed")

	client := newReleaseClient(cfg.baseURL())

	// 2. resolve release
	if err := client.CheckReachable(ctx, cfg.Project); err != nil {
		return err
	}
	releases, err := client.FetchReleases(ctx, cfg.Project)
	if err != nil {
		return err
	}
	var rel Release
	if tag != "" {
		rel, err = releaseByTag(releases, tag)
	} else {
		rel, err = latestRelease(releases)
	}
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Resolved %s release %s", cfg.Project, rel.TagName)

	// 3. resolve artifact
	artifact := artifactName(cfg.OSFamily, runtime.GOARCH)
	asset, err := selectAsset(rel, artifact, func(l AssetLink) bool {
		return strings.Contains(l.Name, artifact)
	})
	if err != nil {
		return err
	}

	// 4. resolve checksum
	manifest, err := client.FetchChecksumManifest(ctx, rel, cfg.ChecksumFile)
	if err != nil {
		return err
	}
	digest, ok := parseChecksumManifest(manifest)[asset.Name]
	if !ok {
		return metaerr.WithMetadata(
			fmt.Errorf("no checksum entry for %s", asset.Name),
			"manifest", cfg.ChecksumFile, "release", rel.TagName,
		)
	}

	// 5. acquire workspace
	workDir, releaseWorkspace, err := acquireWorkspace()
	if err != nil {
		return err
	}
	defer releaseWorkspace()

	// 6. download
	archive, err := downloadAsset(ctx, client.client, asset, workDir)
	if err != nil {
		return metaerr.WithMetadata(err, "url", asset.downloadURL())
	}
	pterm.Success.Printfln("Downloaded %s", asset.Name)

	// 7. verify, strictly before extraction
	if err := verifyChecksum(digest, archive); err != nil {
		return err
	}
	pterm.Success.Println("Checksum verified")

	// 8. extract
	if err := extractArchive(archive, workDir); err != nil {
		return fmt.Errorf("extract archive: %w", err)
	}

	// 9. install
	short := cfg.ShortName()
	src := filepath.Join(workDir, short)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("binary %s not found in archive: %w", short, err)
	}
	dst := filepath.Join(cfg.InstallDir, short)
	if err := installBinary(src, dst); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}

	// 10. report
	pterm.Success.Printfln("Installed %s %s to %s", short, rel.TagName, dst)
	return nil
}
