package claim

import (
	"slices"
	"strings"
)

// Flag creates a boolean-presence handler. It claims exactly one token when
// the token at the current position is one of its activators. Extraction
// yields true when claimed once and fails when claimed more than once.
func Flag(activators ...string) Handler {
	return Handler{
		activators:      activators,
		deriveActivator: true,
		scan:            scanActivated(false),
		value: func(in ValueInput) (any, bool, error) {
			switch len(in.Groups) {
			case 0:
				return nil, false, nil
			case 1:
				return true, true, nil
			default:
				return nil, false, errRepeated(in.Display)
			}
		},
	}
}

// Param creates a valued-option handler. It claims its activator plus the
// following token as the value, unless that token is absent or itself
// starts with "-" (treated as another flag).
func Param(activators ...string) Handler {
	return Handler{
		activators:      activators,
		deriveActivator: true,
		scan:            scanActivated(true),
		value: func(in ValueInput) (any, bool, error) {
			switch len(in.Groups) {
			case 0:
				return nil, false, nil
			case 1:
				g := in.Groups[0]
				if len(g.Tokens) == 2 {
					return g.Tokens[1], true, nil
				}
				// Activator present but no value captured.
				return nil, false, nil
			default:
				return nil, false, errRepeated(in.Display)
			}
		},
	}
}

// scanActivated builds the shared Flag/Param scan: match an activator at
// the current position, optionally capturing the next token as a value.
func scanActivated(withValue bool) ScanFunc {
	return func(in ScanInput) (*Claim, error) {
		if !slices.Contains(in.Activators, in.Tokens[in.Pos]) {
			return nil, nil
		}
		end := in.Pos + 1
		if withValue && end < len(in.Tokens) && !strings.HasPrefix(in.Tokens[end], "-") {
			end++
		}
		return &Claim{Tokens: in.Tokens[in.Pos:end], alt: -1}, nil
	}
}

// Arg creates a positional handler bound to the given result key. It claims
// exactly one token, unconditionally, but at most once per run; extraction
// yields the raw token. Positional binding follows declaration order.
func Arg(key string) Handler {
	return Handler{
		key: key,
		scan: func(in ScanInput) (*Claim, error) {
			if len(in.Prior) > 0 {
				return nil, nil
			}
			return &Claim{Tokens: in.Tokens[in.Pos : in.Pos+1], alt: -1}, nil
		},
		value: func(in ValueInput) (any, bool, error) {
			if len(in.Groups) == 0 {
				return nil, false, nil
			}
			return in.Groups[0].Tokens[0], true, nil
		},
	}
}

// Expect creates a literal-expectation handler. Once reached in priority
// order it insists on the exact literal: any other token is a scan failure
// that aborts the run (or, inside OneOf, disqualifies the alternative).
func Expect(literal string) Handler {
	return Handler{
		activators: []string{literal},
		scan: func(in ScanInput) (*Claim, error) {
			if len(in.Prior) > 0 {
				return nil, nil
			}
			if in.Tokens[in.Pos] != literal {
				return nil, errLiteralMismatch(literal, in.Tokens[in.Pos])
			}
			return &Claim{Tokens: in.Tokens[in.Pos : in.Pos+1], alt: -1}, nil
		},
		value: func(in ValueInput) (any, bool, error) {
			if len(in.Groups) == 0 {
				return nil, false, nil
			}
			return literal, true, nil
		},
	}
}

// OneOf creates an alternative handler. Scanning tries each sub-parser's
// full scan at the current position in listed order; the first that
// succeeds wins and its consumed slice becomes this handler's one claimed
// group, tagged with the alternative index and the sub-parser's own
// accumulators. Extraction delegates to the winning sub-parser.
func OneOf(alternatives ...*Parser) Handler {
	subs := alternatives
	return Handler{
		subs: subs,
		scan: func(in ScanInput) (*Claim, error) {
			reasons := make([]string, 0, len(subs))
			for i, sub := range subs {
				end, accs, err := sub.scan(in.Tokens, in.Pos)
				if err != nil {
					reasons = append(reasons, err.Error())
					continue
				}
				if end == in.Pos {
					// A sub-parser that consumed nothing did not match.
					reasons = append(reasons, "nothing consumed")
					continue
				}
				return &Claim{Tokens: in.Tokens[in.Pos:end], alt: i, sub: accs}, nil
			}
			return nil, errNoAlternative(reasons)
		},
		value: func(in ValueInput) (any, bool, error) {
			switch len(in.Groups) {
			case 0:
				return nil, false, nil
			case 1:
				g := in.Groups[0]
				res, err := subs[g.alt].extract(g.sub)
				if err != nil {
					return nil, false, err
				}
				return res, true, nil
			default:
				return nil, false, errRepeated(in.Display)
			}
		},
	}
}
