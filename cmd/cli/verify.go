package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	internalDI "github.com/lumensyntax-org/truthgit-desktop/internal/di"
)

var (
	verifyDomain string
	verifyRisk   string
	verifyJSON   bool
)

// newVerifyCommand creates the verify command
func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [claim]",
		Short: "Run a governance verification on a claim",
		Long: `Run a governance verification on a claim, locally through the
truthgit CLI or against the remote API depending on the configured mode.

Examples:
  truthgit-desktop verify "Water boils at 100C" --domain physics
  echo "Water boils at 100C" | truthgit-desktop verify --json`,
		RunE: runVerifyCommand,
	}

	cmd.Flags().StringVar(&verifyDomain, "domain", "general", "knowledge domain of the claim")
	cmd.Flags().StringVar(&verifyRisk, "risk", "", "risk profile (low, medium, high); defaults to the configured profile")
	cmd.Flags().BoolVar(&verifyJSON, "json", false, "print the raw governance result as JSON")

	return cmd
}

func runVerifyCommand(cmd *cobra.Command, args []string) error {
	claim := strings.TrimSpace(strings.Join(args, " "))
	if claim == "" && hasStdinInput() {
		input, err := readStdinInput()
		if err != nil {
			return err
		}
		claim = strings.TrimSpace(input)
	}
	if claim == "" {
		return fmt.Errorf("no claim provided; pass it as an argument or pipe it on stdin")
	}

	client, err := internalDI.InjectTruthGitClient()
	if err != nil {
		return err
	}

	result, err := client.Verify(context.Background(), claim, verifyDomain, verifyRisk)
	if err != nil {
		return err
	}

	if verifyJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(presentation.FormatGovernanceResult(result))
	return nil
}
