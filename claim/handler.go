// Package claim is a declarative, composable argument parsing engine.
// Handlers claim contiguous groups of tokens during a scan pass and turn
// everything they claimed into a value during a separate extraction pass.
// Handlers and Parsers are immutable once built and safe to share across
// goroutines; all per-run state lives inside a single Parse call.
package claim

import "strings"

// Claim is the contiguous slice of tokens a single scan call consumed.
// For OneOf handlers it also records which alternative matched and that
// alternative's own accumulators, so extraction never re-runs a scan.
type Claim struct {
	Tokens []string

	alt int       // index of the matched OneOf alternative, -1 otherwise
	sub [][]Claim // the chosen alternative's per-handler accumulators
}

// ScanInput carries everything a scan call may consult. Prior holds the
// groups this handler already claimed in the current run, which is how
// handlers enforce claim-at-most-once policies.
type ScanInput struct {
	Tokens     []string
	Pos        int
	Prior      []Claim
	Activators []string
}

// ValueInput carries a handler's full accumulator into its value function,
// plus a display name for error messages.
type ValueInput struct {
	Groups  []Claim
	Display string
}

// ScanFunc decides whether a handler claims tokens at the current position.
// A nil Claim means "no match here, try the next handler"; a non-nil error
// aborts the entire scan.
type ScanFunc func(in ScanInput) (*Claim, error)

// ValueFunc turns everything a handler claimed into its final value. The
// boolean reports presence: absent values interact with Required and
// Default rather than being errors themselves.
type ValueFunc func(in ValueInput) (any, bool, error)

// Handler is the atomic matching/extraction unit. Handlers are values;
// metadata setters and combinators return derived copies, never mutate.
type Handler struct {
	key        string
	help       string
	group      string
	activators []string

	// deriveActivator enables the "--" + key convention when no explicit
	// activator was supplied (Flag and Param only).
	deriveActivator bool

	scan  ScanFunc
	value ValueFunc

	// subs holds OneOf alternatives so the activator pool and usage
	// renderer can see through composition.
	subs []*Parser
}

// As sets the result key the handler's value is stored under.
func (h Handler) As(key string) Handler {
	h.key = key
	return h
}

// Help sets the handler's help text, consumed only by the usage renderer.
func (h Handler) Help(text string) Handler {
	h.help = text
	return h
}

// Group sets the handler's usage-section label, consumed only by the usage
// renderer.
func (h Handler) Group(label string) Handler {
	h.group = label
	return h
}

// Key returns the handler's result key.
func (h Handler) Key() string {
	return h.key
}

// Activators returns the handler's effective activator list. Flag and Param
// handlers without explicit activators derive "--" + key.
func (h Handler) Activators() []string {
	if len(h.activators) > 0 {
		return h.activators
	}
	if h.deriveActivator && h.key != "" {
		return []string{"--" + h.key}
	}
	return nil
}

// display returns the name used in error messages: the activator list when
// there is one, otherwise the result key.
func (h Handler) display() string {
	if acts := h.Activators(); len(acts) > 0 {
		return strings.Join(acts, ", ")
	}
	if h.key != "" {
		return h.key
	}
	return "argument"
}
