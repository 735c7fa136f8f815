package claim

import (
	"strings"

	"github.com/dzonerzy/go-claim/internal/intern"
)

// ExpandFlags is the token normalizer, run once before any scanning. It
// returns a fresh slice (the input is never touched) with:
//
//   - combined short flags split per character: "-abc" -> "-a" "-b" "-c"
//   - short "=" forms split at the first "=": "-a=5" -> "-a" "5"
//     (everything after the "=" becomes one standalone value token)
//   - long "=" forms split at the first "=": "--foo=bar" -> "--foo" "bar"
//   - every other token passed through unchanged
//
// Relative order of all resulting tokens is preserved. Minted flag tokens
// go through the interning table so repeated runs reuse the same strings.
func ExpandFlags(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "--"):
			if eq := strings.IndexByte(tok, '='); eq != -1 {
				out = append(out, intern.Intern(tok[:eq]), tok[eq+1:])
			} else {
				out = append(out, tok)
			}
		case len(tok) > 1 && tok[0] == '-':
			out = appendShort(out, tok[1:])
		default:
			out = append(out, tok)
		}
	}
	return out
}

// appendShort splits the body of a single-dash token into dashed
// per-character tokens, stopping at the first "=" whose remainder becomes
// one final value token.
func appendShort(out []string, body string) []string {
	for i, r := range body {
		if r == '=' {
			return append(out, body[i+1:])
		}
		if r < 0x80 {
			out = append(out, intern.Dashed(byte(r)))
		} else {
			out = append(out, intern.Intern("-"+string(r)))
		}
	}
	return out
}
