package gamebox

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"

	"github.com/google/uuid"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
)

// IdentifierType describes how a gamebox's identifier was produced.
// The integer values are persisted in the manifest and must not change.
type IdentifierType int

const (
	// IdentifierUserSpecified is a manually assigned identifier. Never
	// replaced automatically.
	IdentifierUserSpecified IdentifierType = 0
	// IdentifierUUID is a random UUID, generated for boxes with no
	// discoverable executables.
	IdentifierUUID IdentifierType = 1
	// IdentifierEXEDigest is a SHA-1 digest over the box's executables.
	IdentifierEXEDigest IdentifierType = 2
	// IdentifierReverseDNS is a reverse-DNS style identifier
	// (com.example.game). User-settable only, never auto-generated.
	IdentifierReverseDNS IdentifierType = 3
)

func (t IdentifierType) String() string {
	switch t {
	case IdentifierUserSpecified:
		return "user-specified"
	case IdentifierUUID:
		return "uuid"
	case IdentifierEXEDigest:
		return "exe-digest"
	case IdentifierReverseDNS:
		return "reverse-dns"
	default:
		return "unknown"
	}
}

// generateIdentifier derives a fresh identifier for a box whose manifest has
// none. If any executables are discoverable their content digest is used,
// otherwise a random UUID.
func generateIdentifier(fs filesystem.FS, executables []string) (string, IdentifierType) {
	if len(executables) > 0 {
		digest, err := executableDigest(fs, executables)
		if err == nil {
			return digest, IdentifierEXEDigest
		}
	}
	return uuid.NewString(), IdentifierUUID
}

// executableDigest computes a SHA-1 digest over the concatenated bytes of
// every executable, in path-sorted order so the result is deterministic for
// a given set of files.
func executableDigest(fs filesystem.FS, executables []string) (string, error) {
	sorted := make([]string, len(executables))
	copy(sorted, executables)
	sort.Strings(sorted)

	h := sha1.New()
	for _, path := range sorted {
		data, err := fs.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess,
				"could not read executable %s for digest", path)
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
