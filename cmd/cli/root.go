package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/di"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/version"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "truthgit-desktop",
	Short:   "Desktop console for TruthGit governance",
	Long:    `A terminal workbench around the truthgit CLI: verify claims, browse the truth repository and the knowledge vault, and keep an audit trail.`,
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Local overrides (TRUTHGIT_BIN, TRUTHGIT_API_URL, debug vars)
		// may live in a .env next to the binary.
		_ = godotenv.Load()

		var logger logging.Logger
		switch {
		case quiet:
			logger = logging.NewQuietLogger()
		case verbose:
			logger = logging.NewVerboseLogger()
		default:
			logger = logging.NewDefaultLogger()
		}
		logging.SetGlobalLogger(logger)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: start the desktop TUI.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("not a terminal; use a subcommand such as 'verify' or 'status'")
		}

		tuiApp, err := di.InjectTUI()
		if err != nil {
			return err
		}
		defer tuiApp.Stop()
		return tuiApp.Start()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	RootCmd.AddCommand(newVerifyCommand())
	RootCmd.AddCommand(newStatusCommand())
	RootCmd.AddCommand(newUpdateCommand())
}
