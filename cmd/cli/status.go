package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	internalDI "github.com/lumensyntax-org/truthgit-desktop/internal/di"
)

// newStatusCommand creates the status command
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the truth repository status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := internalDI.InjectTruthGitClient()
			if err != nil {
				return err
			}

			status, err := client.Status()
			if err != nil {
				return err
			}

			fmt.Print(presentation.FormatRepoStatus(status))
			return nil
		},
	}
}
