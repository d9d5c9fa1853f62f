package presentation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/truthgit"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/vault"
)

// FormatGovernanceResult renders a verdict as console text.
func FormatGovernanceResult(res *truthgit.GovernanceResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status:     %s\n", res.Status)
	fmt.Fprintf(&b, "action:     %s\n", res.Action)
	fmt.Fprintf(&b, "confidence: %.2f\n", res.Confidence)
	fmt.Fprintf(&b, "reason:     %s\n", res.Reason)
	if res.AuditRef != "" {
		fmt.Fprintf(&b, "audit ref:  %s\n", res.AuditRef)
	}
	if res.OntologicalType != "" {
		fmt.Fprintf(&b, "type:       %s\n", res.OntologicalType)
	}
	return b.String()
}

// FormatClaims renders the claim list as a markdown document.
func FormatClaims(claims []truthgit.RawObject) string {
	var b strings.Builder
	b.WriteString("# Claims\n\n")
	if len(claims) == 0 {
		b.WriteString("No claims in the truth repository.\n")
		return b.String()
	}

	for _, claim := range claims {
		content, _ := claim["content"].(string)
		hash, _ := claim["$hash"].(string)
		state, _ := claim["state"].(string)
		domain, _ := claim["domain"].(string)

		fmt.Fprintf(&b, "- **%s**\n", content)
		var details []string
		if hash != "" {
			details = append(details, "`"+shortHash(hash)+"`")
		}
		if domain != "" {
			details = append(details, domain)
		}
		if state != "" {
			details = append(details, state)
		}
		if created := createdAt(claim); created != "" {
			details = append(details, created)
		}
		if len(details) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(details, " · "))
		}
	}
	fmt.Fprintf(&b, "\n%d claim(s), newest first.\n", len(claims))
	return b.String()
}

// FormatObject pretty-prints one repository object as fenced JSON.
func FormatObject(title string, obj truthgit.RawObject) string {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		data = []byte(fmt.Sprintf("%v", obj))
	}
	return fmt.Sprintf("# %s\n\n```json\n%s\n```\n", title, data)
}

// FormatVerifications renders the verification list as markdown.
func FormatVerifications(vfs []truthgit.RawObject) string {
	var b strings.Builder
	b.WriteString("# Verifications\n\n")
	if len(vfs) == 0 {
		b.WriteString("No verifications recorded.\n")
		return b.String()
	}

	for _, vf := range vfs {
		status, _ := vf["status"].(string)
		claim, _ := vf["claim"].(string)
		ts, _ := vf["timestamp"].(string)

		fmt.Fprintf(&b, "- **%s** %s\n", status, claim)
		if ts != "" {
			fmt.Fprintf(&b, "  %s\n", ts)
		}
	}
	return b.String()
}

// FormatRepoStatus renders the repository status as console text.
func FormatRepoStatus(status *truthgit.RepoStatus) string {
	if !status.Exists {
		return fmt.Sprintf("no truth repository at %s (run truthgit init)\n", status.Path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "repository: %s\n", status.Path)
	fmt.Fprintf(&b, "claims:     %d\n", status.ClaimsCount)
	if status.HeadRef != "" {
		fmt.Fprintf(&b, "HEAD:       %s\n", status.HeadRef)
	}
	if status.HasKeys {
		b.WriteString("proof keys: present\n")
	} else {
		b.WriteString("proof keys: missing\n")
	}
	return b.String()
}

// FormatAuditTrail renders audit entries as markdown, newest first.
func FormatAuditTrail(entries []truthgit.AuditEntry) string {
	var b strings.Builder
	b.WriteString("# Audit Trail\n\n")
	if len(entries) == 0 {
		b.WriteString("No audit entries.\n")
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "- **%s** -> %s (%.2f) - %s\n", e.ResultStatus, e.ResultAction, e.Confidence, e.Claim)
		fmt.Fprintf(&b, "  %s · %s/%s\n", e.Timestamp, e.Domain, e.RiskProfile)
	}
	return b.String()
}

// FormatVaultStatus renders the vault summary as console text.
func FormatVaultStatus(status *vault.Status) string {
	if !status.Exists {
		return fmt.Sprintf("no vault at %s (set vault_path in :settings)\n", status.Path)
	}
	return fmt.Sprintf("vault: %s\nfiles: %d, folders: %d\n", status.Path, status.FileCount, status.FolderCount)
}

// FormatVaultListing renders a directory listing as markdown.
func FormatVaultListing(path string, files []vault.File) string {
	var b strings.Builder
	if path == "" {
		path = "/"
	}
	fmt.Fprintf(&b, "# Vault: %s\n\n", path)
	if len(files) == 0 {
		b.WriteString("Empty directory.\n")
		return b.String()
	}

	for _, f := range files {
		if f.IsDir {
			fmt.Fprintf(&b, "- 📁 **%s**\n", f.Name)
		} else {
			fmt.Fprintf(&b, "- %s\n", f.Name)
		}
	}
	return b.String()
}

// FormatSearchResults renders note search hits as markdown.
func FormatSearchResults(query string, results []vault.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search: %s\n\n", query)
	if len(results) == 0 {
		b.WriteString("No matches.\n")
		return b.String()
	}

	for _, r := range results {
		fmt.Fprintf(&b, "## %s\n\n", r.Path)
		for i, m := range r.Matches {
			fmt.Fprintf(&b, "- `%d`: %s\n", r.LineNumbers[i], m)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSettings renders the current settings as console text.
func FormatSettings(s *config.AppSettings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "vault_path:           %s\n", s.VaultPath)
	fmt.Fprintf(&b, "truth_repo_path:      %s\n", s.TruthRepoPath)
	fmt.Fprintf(&b, "api_mode:             %s\n", s.APIMode)
	fmt.Fprintf(&b, "api_url:              %s\n", s.APIURL)
	fmt.Fprintf(&b, "default_risk_profile: %s\n", s.DefaultRiskProfile)
	fmt.Fprintf(&b, "terminal_font_size:   %d\n", s.TerminalFontSize)
	fmt.Fprintf(&b, "auto_save_audit:      %t\n", s.AutoSaveAudit)
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

func createdAt(obj truthgit.RawObject) string {
	meta, _ := obj["metadata"].(map[string]any)
	if meta == nil {
		return ""
	}
	created, _ := meta["created_at"].(string)
	return created
}
