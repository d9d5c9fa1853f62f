package truthgit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditTrail persists governance decisions in audit.json inside the
// truth repository, newest entries first.
type AuditTrail struct {
	repoPath func() string
	mu       sync.Mutex
}

func NewAuditTrail(repoPath func() string) *AuditTrail {
	return &AuditTrail{repoPath: repoPath}
}

func (a *AuditTrail) file() string {
	return filepath.Join(a.repoPath(), "audit.json")
}

// Entries reads the audit trail. A missing file means an empty trail.
func (a *AuditTrail) Entries() ([]AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.read()
}

func (a *AuditTrail) read() ([]AuditEntry, error) {
	data, err := os.ReadFile(a.file())
	if err != nil {
		if os.IsNotExist(err) {
			return []AuditEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read audit file: %w", err)
	}

	var entries []AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse audit file: %w", err)
	}
	return entries, nil
}

// Append prepends an entry so the file stays newest-first. A corrupt
// existing file is replaced rather than blocking new entries.
func (a *AuditTrail) Append(entry AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries, err := a.read()
	if err != nil {
		entries = []AuditEntry{}
	}

	entries = append([]AuditEntry{entry}, entries...)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize audit: %w", err)
	}

	if err := os.WriteFile(a.file(), data, 0644); err != nil {
		return fmt.Errorf("failed to write audit file: %w", err)
	}
	return nil
}

// RecordVerification builds and appends an audit entry for a completed
// governance verification.
func (a *AuditTrail) RecordVerification(claim, domain, riskProfile string, result *GovernanceResult) error {
	return a.Append(AuditEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Action:       "governance_verify",
		Claim:        claim,
		Domain:       domain,
		RiskProfile:  riskProfile,
		ResultStatus: result.Status,
		ResultAction: result.Action,
		Confidence:   result.Confidence,
	})
}
