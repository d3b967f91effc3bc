package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepo = "s0up4200/gifseek"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade gifseek to the latest release",
	RunE:  runSelfUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runSelfUpgrade(cmd *cobra.Command, args []string) error {
	if appVersion == "dev" {
		return fmt.Errorf("cannot upgrade a development build")
	}

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("cannot parse current version %q: %w", appVersion, err)
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found || latest.LessOrEqual(current.String()) {
		fmt.Printf("Current version %s is the latest\n", appVersion)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("Updating %s -> %s...\n", appVersion, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}
