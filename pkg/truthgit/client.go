package truthgit

import (
	"context"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
)

// Client is the single entry point for governance operations. It picks
// the local CLI or the remote API per the api_mode setting and records
// verdicts in the audit trail when auto_save_audit is on.
type Client struct {
	settings *config.SettingsManager
	cli      *CLI
	api      *APIClient
	store    *ObjectStore
	audit    *AuditTrail
	logger   logging.Logger
}

func NewClient(settings *config.SettingsManager, cfg config.Manager) *Client {
	repoPath := func() string { return settings.GetSettings().TruthRepoPath }

	return &Client{
		settings: settings,
		cli:      NewCLI(cfg),
		api:      NewAPIClient(func() string { return settings.GetSettings().APIURL }),
		store:    NewObjectStore(repoPath),
		audit:    NewAuditTrail(repoPath),
		logger:   logging.NewComponentLogger("truthgit"),
	}
}

// Verify runs a governance verification, local-first. riskProfile ""
// means the configured default.
func (c *Client) Verify(ctx context.Context, claim, domain, riskProfile string) (*GovernanceResult, error) {
	s := c.settings.GetSettings()
	if riskProfile == "" {
		riskProfile = s.DefaultRiskProfile
	}

	var (
		result *GovernanceResult
		err    error
	)
	if s.APIMode == "remote" {
		result, err = c.api.Verify(ctx, claim, domain, riskProfile)
	} else {
		result, err = c.cli.SafeVerify(ctx, claim, domain, riskProfile)
	}
	if err != nil {
		return nil, err
	}

	if s.AutoSaveAudit {
		if auditErr := c.audit.RecordVerification(claim, domain, riskProfile, result); auditErr != nil {
			c.logger.Warn("failed to record audit entry", "error", auditErr)
		}
	}

	return result, nil
}

// Run executes an arbitrary whitelisted truthgit subcommand.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	return c.cli.Run(ctx, args...)
}

// Claims lists all claims, newest first.
func (c *Client) Claims() ([]RawObject, error) {
	return c.store.ListClaims()
}

// Claim loads one claim by hash.
func (c *Client) Claim(hash string) (RawObject, error) {
	return c.store.GetClaim(hash)
}

// Verifications lists all verification objects, newest first.
func (c *Client) Verifications() ([]RawObject, error) {
	return c.store.ListVerifications()
}

// Status inspects the truth repository.
func (c *Client) Status() (*RepoStatus, error) {
	return c.store.Status()
}

// AuditTrail reads the persisted audit entries, newest first.
func (c *Client) AuditTrail() ([]AuditEntry, error) {
	return c.audit.Entries()
}
