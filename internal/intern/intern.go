// Package intern provides string interning for go-claim token normalization.
// The normalizer mints many small tokens (dashed short flags, long-flag name
// prefixes split off "=" forms); interning keeps repeated parse runs from
// re-allocating the same handful of strings.
package intern

import "sync"

// Interner is a thread-safe canonical-string table.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// New creates an interner with the given pre-allocated capacity.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	if canon, ok := in.strings[s]; ok {
		in.mu.RUnlock()
		return canon
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	// Re-check after acquiring the write lock.
	if canon, ok := in.strings[s]; ok {
		return canon
	}
	in.strings[s] = s
	return s
}

// PreIntern seeds the table without going through the fast path.
func (in *Interner) PreIntern(values []string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, s := range values {
		in.strings[s] = s
	}
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

// Dashed returns the two-byte token "-c" for a short-flag character.
// Alphanumeric characters hit a pre-built table and never allocate.
func Dashed(b byte) string {
	switch {
	case b >= 'a' && b <= 'z':
		return dashedTokens[b-'a']
	case b >= 'A' && b <= 'Z':
		return dashedTokens[26+b-'A']
	case b >= '0' && b <= '9':
		return dashedTokens[52+b-'0']
	default:
		return Global.Intern(string([]byte{'-', b}))
	}
}

// Pre-built dashed short-flag tokens: a-z (0-25), A-Z (26-51), 0-9 (52-61).
var dashedTokens = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

// CommonActivators are flag names seen in nearly every CLI; pre-interning
// them keeps the table warm from the first parse.
var CommonActivators = []string{
	"--help", "--version", "--verbose", "--quiet", "--debug",
	"--config", "--output", "--input", "--force", "--dry-run",
}

// Global is the process-wide interner used by the token normalizer.
var Global *Interner

//nolint:gochecknoinits // global interner requires init for pre-interning
func init() {
	Global = New(128)
	Global.PreIntern(CommonActivators)
}

// Intern interns a string using the global interner.
func Intern(s string) string {
	return Global.Intern(s)
}
