package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/salon-notify/internal/build"
)

const releaseRepo = "shaharia-lab/salon-notify"

// errDevBuild is returned when the running binary carries no release version.
var errDevBuild = errors.New("cannot update a dev build; install a tagged release first")

// NewUpdateCmd returns the "update" subcommand that self-updates the binary
// from GitHub releases.
func NewUpdateCmd() *cobra.Command {
	var yes, checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update salon-notify to the latest release",
		Long:  "Check GitHub releases for a newer salon-notify and replace the running binary in place.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := releaseVersion(build.Version)
			if err != nil {
				return err
			}
			return runUpdate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), current, yes, checkOnly)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only report whether an update is available")
	return cmd
}

// releaseVersion parses the stamped build version, rejecting dev builds.
func releaseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "dev" || v == "unknown" {
		return nil, errDevBuild
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w (version %q is not semver)", errDevBuild, v)
	}
	return parsed, nil
}

func runUpdate(ctx context.Context, in io.Reader, out io.Writer, current *semver.Version, skipConfirm, checkOnly bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintf(out, "Current version: %s\n", current)
	fmt.Fprint(out, "Checking for updates... ")

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("creating updater: %w", err)
	}

	release, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepo))
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	if !found || !release.GreaterThan(current.String()) {
		fmt.Fprintln(out, "already up to date.")
		return nil
	}
	fmt.Fprintf(out, "found %s\n", release.Version())
	if checkOnly {
		return nil
	}

	if !skipConfirm && !confirm(in, out, fmt.Sprintf("Update to %s? [y/N] ", release.Version())) {
		fmt.Fprintln(out, "Update canceled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding current executable: %w", err)
	}

	fmt.Fprintf(out, "Updating to %s...\n", release.Version())
	if err := updater.UpdateTo(ctx, release, exe); err != nil {
		return fmt.Errorf("updating: %w", err)
	}

	fmt.Fprintf(out, "Updated to %s. Restart salon-notify to use the new version.\n", release.Version())
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}
