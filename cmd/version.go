package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/fitcheck/internal/releasecheck"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "fitcheck", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}

		var opts []releasecheck.Option
		if cfg != nil {
			opts = append(opts,
				releasecheck.WithRepo(cfg.Release.Repo),
				releasecheck.WithBaseURL(cfg.Release.BaseURL))
		}
		res, err := releasecheck.NewChecker(opts...).Check(cmd.Context(), version)
		if errors.Is(err, releasecheck.ErrNoRelease) {
			fmt.Fprintln(out, "No published release yet.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		switch {
		case !res.Comparable:
			fmt.Fprintf(out, "Latest release is %s (development build, not compared)\n", res.LatestVersion)
		case res.UpdateAvailable:
			fmt.Fprintf(out, "Update available: %s -> %s\n%s\n", res.CurrentVersion, res.LatestVersion, res.URL)
		default:
			fmt.Fprintln(out, "You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
