package claim

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-claim/internal/fuzzy"
)

// suggestionMaxDistance bounds the edit distance for "did you mean" hints
// on unrecognized arguments.
const suggestionMaxDistance = 2

// Parser is an ordered collection of handlers. Declaration order is the
// priority order tried at every scan position. Prelude and epilogue are
// display-only and never affect scanning or extraction.
type Parser struct {
	handlers []Handler
	prelude  string
	epilogue string
}

// NewParser creates a parser over the given handlers, in priority order.
func NewParser(handlers ...Handler) *Parser {
	return &Parser{handlers: handlers}
}

// Handle appends handlers and returns the parser for chaining.
func (p *Parser) Handle(handlers ...Handler) *Parser {
	p.handlers = append(p.handlers, handlers...)
	return p
}

// Prelude sets introductory usage text.
func (p *Parser) Prelude(text string) *Parser {
	p.prelude = text
	return p
}

// Epilogue sets trailing usage text.
func (p *Parser) Epilogue(text string) *Parser {
	p.epilogue = text
	return p
}

// Include appends another parser's handlers, order preserved, this parser's
// handlers keeping priority.
func (p *Parser) Include(other *Parser) *Parser {
	p.handlers = append(p.handlers, other.handlers...)
	return p
}

// Handlers returns the parser's handlers in declaration order.
func (p *Parser) Handlers() []Handler {
	return p.handlers
}

// scan walks the token stream from start, assigning tokens to handlers.
// At every position the handlers are tried in declaration order; the first
// claim wins, the position advances past it, and the handler loop restarts
// (greedy, leftmost-first, no backtracking across handlers). A pass where
// nothing is claimed ends the loop; zero total progress with tokens left is
// a structural failure, which doubles as the termination guarantee.
func (p *Parser) scan(tokens []string, start int) (int, [][]Claim, error) {
	accs := make([][]Claim, len(p.handlers))
	pos := start

	for pos < len(tokens) {
		claimed := false
		for i := range p.handlers {
			h := &p.handlers[i]
			c, err := h.scan(ScanInput{
				Tokens:     tokens,
				Pos:        pos,
				Prior:      accs[i],
				Activators: h.Activators(),
			})
			if err != nil {
				return pos, nil, err
			}
			if c == nil {
				continue
			}
			accs[i] = append(accs[i], *c)
			pos += len(c.Tokens)
			claimed = true
			break
		}
		if !claimed {
			break
		}
	}

	if pos == start && start < len(tokens) {
		return pos, nil, errStall(tokens[start])
	}
	return pos, accs, nil
}

// extract calls each handler's value function exactly once, in declaration
// order, with everything that handler claimed. The first failure aborts the
// whole extraction.
func (p *Parser) extract(accs [][]Claim) (*Result, error) {
	res := newResult()
	for i := range p.handlers {
		h := &p.handlers[i]
		v, present, err := h.value(ValueInput{Groups: accs[i], Display: h.display()})
		if err != nil {
			return nil, err
		}
		if present && h.key != "" {
			res.set(h.key, v)
		}
	}
	return res, nil
}

// Parse normalizes the tokens, scans from position zero, requires full
// consumption and extracts the result. All failures come back as error
// values; process termination is the front end's concern.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	normalized := ExpandFlags(tokens)

	pos, accs, err := p.scan(normalized, 0)
	if err != nil {
		var me *MatchError
		if errors.As(err, &me) && me.Type == ErrorTypeStall {
			// A top-level scan that went nowhere means the very first
			// token is unrecognized; report it as such.
			return nil, p.trailingError(me.Token)
		}
		return nil, err
	}
	if pos < len(normalized) {
		return nil, p.trailingError(normalized[pos])
	}
	return p.extract(accs)
}

// trailingError builds the unrecognized-argument failure, with a fuzzy
// suggestion drawn from every declared activator, including those inside
// OneOf alternatives.
func (p *Parser) trailingError(token string) *MatchError {
	e := errTrailing(token)
	if best := fuzzy.FindBestActivator(token, p.activatorPool(), suggestionMaxDistance); best != "" {
		e.Suggestion = fmt.Sprintf("did you mean '%s'?", best)
	}
	return e
}

// activatorPool collects the activators of every handler, recursing through
// OneOf alternatives.
func (p *Parser) activatorPool() []string {
	var pool []string
	for i := range p.handlers {
		h := &p.handlers[i]
		pool = append(pool, h.Activators()...)
		for _, sub := range h.subs {
			pool = append(pool, sub.activatorPool()...)
		}
	}
	return pool
}
