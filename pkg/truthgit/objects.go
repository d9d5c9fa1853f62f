package truthgit

import (
	"compress/zlib"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
)

// Object kinds map to subdirectories of objects/. Objects are stored
// content-addressed as objects/<kind>/<first two hash chars>/<rest>,
// zlib-compressed JSON.
const (
	KindClaim        = "cl"
	KindVerification = "vf"
)

// ObjectStore reads the truth repository's object database.
type ObjectStore struct {
	repoPath func() string
	logger   logging.Logger
}

func NewObjectStore(repoPath func() string) *ObjectStore {
	return &ObjectStore{
		repoPath: repoPath,
		logger:   logging.NewComponentLogger("objects"),
	}
}

// decompressObject inflates one object file and decodes its JSON body.
func decompressObject(path string) (RawObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	var obj RawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse object JSON: %w", err)
	}
	return obj, nil
}

// list walks objects/<kind>/<xx>/<rest> and decodes every object.
// Unreadable objects are logged and skipped, never fatal.
func (s *ObjectStore) list(kind string) ([]RawObject, error) {
	dir := filepath.Join(s.repoPath(), "objects", kind)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []RawObject{}, nil
	}

	prefixes, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var objects []RawObject
	for _, prefix := range prefixes {
		if !prefix.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(dir, prefix.Name()))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, prefix.Name(), entry.Name())
			obj, err := decompressObject(path)
			if err != nil {
				s.logger.Warn("failed to read object", "path", path, "error", err)
				continue
			}
			objects = append(objects, obj)
		}
	}
	return objects, nil
}

// ListClaims returns all claims, newest first by metadata.created_at.
func (s *ObjectStore) ListClaims() ([]RawObject, error) {
	claims, err := s.list(KindClaim)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(claims, func(i, j int) bool {
		return claimCreatedAt(claims[i]) > claimCreatedAt(claims[j])
	})
	return claims, nil
}

// ListVerifications returns all verifications, newest first by
// timestamp.
func (s *ObjectStore) ListVerifications() ([]RawObject, error) {
	vfs, err := s.list(KindVerification)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(vfs, func(i, j int) bool {
		a, _ := vfs[i]["timestamp"].(string)
		b, _ := vfs[j]["timestamp"].(string)
		return a > b
	})
	return vfs, nil
}

// GetClaim loads one claim by its full hash.
func (s *ObjectStore) GetClaim(hash string) (RawObject, error) {
	if len(hash) < 3 {
		return nil, fmt.Errorf("invalid hash")
	}

	path := filepath.Join(s.repoPath(), "objects", KindClaim, hash[:2], hash[2:])
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("claim not found: %s", hash)
	}
	return decompressObject(path)
}

// CountClaims counts claim objects without decoding them.
func (s *ObjectStore) CountClaims() int {
	dir := filepath.Join(s.repoPath(), "objects", KindClaim)

	count := 0
	prefixes, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	for _, prefix := range prefixes {
		if !prefix.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(dir, prefix.Name()))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				count++
			}
		}
	}
	return count
}

func claimCreatedAt(obj RawObject) string {
	meta, _ := obj["metadata"].(map[string]any)
	if meta == nil {
		return ""
	}
	created, _ := meta["created_at"].(string)
	return created
}
