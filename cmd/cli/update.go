package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/update"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/version"
)

var (
	checkOnly     bool
	forceUpdate   bool
	targetVersion string
	updateTimeout time.Duration
)

// newUpdateCommand creates the update command
func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update truthgit-desktop to the latest version",
		Long: `Update truthgit-desktop to the latest version from GitHub releases.

Examples:
  truthgit-desktop update                    # Update to latest version
  truthgit-desktop update --check            # Check for updates without updating
  truthgit-desktop update --version v1.2.3   # Update to specific version`,
		RunE: runUpdateCommand,
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Check for updates without updating")
	cmd.Flags().BoolVar(&forceUpdate, "force", false, "Force update even if current version is latest")
	cmd.Flags().StringVar(&targetVersion, "version", "", "Update to specific version")
	cmd.Flags().DurationVar(&updateTimeout, "timeout", 5*time.Minute, "Timeout for update operation")

	return cmd
}

func runUpdateCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	updater, err := update.NewUpdater()
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	if checkOnly {
		return checkForUpdates(ctx, updater)
	}
	return performUpdate(ctx, updater)
}

func checkForUpdates(ctx context.Context, updater *update.Updater) error {
	fmt.Printf("Current version: %s\n", version.GetVersion())
	fmt.Println("Checking for updates...")

	updateInfo, err := updater.CheckForUpdates(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	fmt.Printf("Latest version: %s\n", updateInfo.LatestVersion)

	if updateInfo.UpdateNeeded {
		fmt.Printf("A new version is available: %s -> %s\n", updateInfo.CurrentVersion, updateInfo.LatestVersion)
		if updateInfo.ReleaseNotes != "" {
			fmt.Printf("\nRelease Notes:\n%s\n", updateInfo.ReleaseNotes)
		}
		fmt.Println("\nRun 'truthgit-desktop update' to update.")
	} else {
		fmt.Println("You are already using the latest version.")
	}

	return nil
}

func performUpdate(ctx context.Context, updater *update.Updater) error {
	fmt.Printf("Current version: %s\n", version.GetVersion())

	if !forceUpdate {
		updateInfo, err := updater.CheckForUpdates(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !updateInfo.UpdateNeeded {
			fmt.Printf("You are already using the latest version (%s).\n", updateInfo.LatestVersion)
			fmt.Println("Use --force to reinstall the current version.")
			return nil
		}

		fmt.Printf("Updating from %s to %s...\n", updateInfo.CurrentVersion, updateInfo.LatestVersion)
	} else {
		fmt.Println("Force updating...")
	}

	opts := update.UpdateOptions{
		Force:         forceUpdate,
		TargetVersion: targetVersion,
		Timeout:       updateTimeout,
	}

	updateInfo, err := updater.UpdateWithOptions(ctx, opts)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	if targetVersion != "" {
		fmt.Printf("Successfully updated to version %s. Restart to use it.\n", targetVersion)
	} else {
		fmt.Printf("Successfully updated to version %s. Restart to use it.\n", updateInfo.LatestVersion)
	}
	return nil
}
