package driver

import (
	"crypto/sha256"
	"fmt"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// combineDigest: H(content || fingerprint).
func combineDigest(content Digest, fingerprint string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte(fingerprint))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// optionsFingerprint covers every option that changes fragments or diagnostics.
// The separator is excluded: the cache stores fragments, not joined text.
func optionsFingerprint(opts Options) string {
	t := opts.Transpile
	renamer := "identity"
	if t.Renamer != nil {
		renamer = fmt.Sprintf("%T", t.Renamer)
	}
	return fmt.Sprintf("v%d;renamer=%s;banner=%t;prelude=%t;strict=%t;max=%d",
		diskCacheSchemaVersion, renamer, t.Banner, t.Prelude, t.StrictBlocks, opts.MaxDiagnostics)
}

// CacheKey returns the disk cache key for content transpiled under opts.
func CacheKey(content []byte, opts Options) Digest {
	return combineDigest(sha256.Sum256(content), optionsFingerprint(opts))
}
