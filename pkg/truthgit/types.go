// Package truthgit wraps the TruthGit governance system: the local CLI,
// the remote verification API and the on-disk truth repository.
package truthgit

// GovernanceResult is the verdict of a governance verification.
type GovernanceResult struct {
	Status          string  `json:"status"`
	Action          string  `json:"action"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
	AuditRef        string  `json:"audit_ref"`
	OntologicalType string  `json:"ontological_type,omitempty"`
}

// apiResponse is the remote API envelope.
type apiResponse struct {
	Success bool              `json:"success"`
	Data    *GovernanceResult `json:"data"`
	Error   string            `json:"error"`
}

// Claim is a typed view of a claim object. Objects carry free-form
// metadata, so listings operate on RawObject and this type is for
// callers that want the known fields.
type Claim struct {
	Content    string        `json:"content"`
	Confidence float64       `json:"confidence"`
	Category   string        `json:"category"`
	Domain     string        `json:"domain"`
	State      string        `json:"state"`
	Hash       string        `json:"$hash"`
	ClaimType  string        `json:"$type"`
	Metadata   ClaimMetadata `json:"metadata"`
}

type ClaimMetadata struct {
	Language  string   `json:"language,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	CreatedBy string   `json:"created_by,omitempty"`
}

// RawObject is a decompressed repository object with its dynamic shape
// preserved.
type RawObject map[string]any

// RepoStatus describes the truth repository on disk.
type RepoStatus struct {
	Exists      bool   `json:"exists"`
	Path        string `json:"path"`
	ClaimsCount int    `json:"claims_count"`
	HeadRef     string `json:"head_ref,omitempty"`
	HasKeys     bool   `json:"has_keys"`
}

// AuditEntry is one governance decision in the audit trail, newest
// first in audit.json.
type AuditEntry struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	Action       string  `json:"action"`
	Claim        string  `json:"claim"`
	Domain       string  `json:"domain"`
	RiskProfile  string  `json:"risk_profile"`
	ResultStatus string  `json:"result_status"`
	ResultAction string  `json:"result_action"`
	Confidence   float64 `json:"confidence"`
}
