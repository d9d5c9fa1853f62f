package truthgit

import (
	"os"
	"path/filepath"
	"strings"
)

// Status inspects the truth repository on disk. A missing repository is
// a valid answer, not an error.
func (s *ObjectStore) Status() (*RepoStatus, error) {
	repoPath := s.repoPath()

	if _, err := os.Stat(repoPath); os.IsNotExist(err) {
		return &RepoStatus{Exists: false, Path: repoPath}, nil
	}

	status := &RepoStatus{
		Exists:      true,
		Path:        repoPath,
		ClaimsCount: s.CountClaims(),
	}

	if head, err := os.ReadFile(filepath.Join(repoPath, "HEAD")); err == nil {
		status.HeadRef = strings.TrimSpace(string(head))
	}

	_, keyErr := os.Stat(filepath.Join(repoPath, "proof.key"))
	_, pubErr := os.Stat(filepath.Join(repoPath, "proof.pub"))
	status.HasKeys = keyErr == nil && pubErr == nil

	return status, nil
}
