package claim

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// TestParseUnrecognizedArgument tests the full-consumption requirement: an
// unmatched token fails at the top level instead of silently succeeding.
func TestParseUnrecognizedArgument(t *testing.T) {
	p := NewParser(Flag("--verbose").As("v"))

	_, err := p.Parse([]string{"--unknown"})
	if err == nil {
		t.Fatal("Expected error for unrecognized argument")
	}
	var me *MatchError
	if !errors.As(err, &me) {
		t.Fatalf("Expected *MatchError, got %T", err)
	}
	if me.Type != ErrorTypeTrailingInput {
		t.Errorf("Expected ErrorTypeTrailingInput, got %s", me.Type)
	}
	if !strings.Contains(me.Message, "--unknown") {
		t.Errorf("Expected offending token in message, got %q", me.Message)
	}
}

// TestParseTrailingAfterPartialConsumption tests the unrecognized-argument
// condition after a partially successful scan.
func TestParseTrailingAfterPartialConsumption(t *testing.T) {
	p := NewParser(Param("--out").As("o"))

	_, err := p.Parse([]string{"--out", "file", "bogus"})
	var me *MatchError
	if !errors.As(err, &me) || me.Type != ErrorTypeTrailingInput {
		t.Fatalf("Expected trailing-input error, got %v", err)
	}
	if me.Token != "bogus" {
		t.Errorf("Expected first unconsumed token 'bogus', got %q", me.Token)
	}
}

// TestParseSuggestionOnTypo tests the fuzzy "did you mean" hint on
// unrecognized activators.
func TestParseSuggestionOnTypo(t *testing.T) {
	p := NewParser(Flag("--verbose").As("v"))

	_, err := p.Parse([]string{"--verbos"})
	var me *MatchError
	if !errors.As(err, &me) {
		t.Fatalf("Expected *MatchError, got %T", err)
	}
	if !strings.Contains(me.Suggestion, "--verbose") {
		t.Errorf("Expected suggestion for --verbose, got %q", me.Suggestion)
	}
}

// TestActivatorPoolSeesOneOfAlternatives tests that the suggestion pool
// recurses into OneOf alternatives.
func TestActivatorPoolSeesOneOfAlternatives(t *testing.T) {
	add := NewParser(Expect("add").As("verb"), Flag("--force").As("force"))
	p := NewParser(OneOf(add).As("cmd"))

	pool := p.activatorPool()
	found := false
	for _, a := range pool {
		if a == "--force" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected --force in activator pool, got %v", pool)
	}
}

// TestParseEmptyInput tests a run over zero tokens.
func TestParseEmptyInput(t *testing.T) {
	p := NewParser(
		Flag("--verbose").As("v"),
		Param("--out").As("o"),
	)

	res, err := p.Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Len() != 0 {
		t.Errorf("Expected empty result, got keys %v", res.Keys())
	}
}

// TestParseDeclarationOrderPriority tests that the first handler in
// declaration order wins a contested token.
func TestParseDeclarationOrderPriority(t *testing.T) {
	p := NewParser(
		Expect("status").As("verb"),
		Arg("word"),
	)

	res, err := p.Parse([]string{"status"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := res.String("verb"); v != "status" {
		t.Errorf("Expected verb='status', got %q", v)
	}
	if res.Has("word") {
		t.Error("Lower-priority positional should not have claimed the token")
	}
}

// TestIncludePreservesOrder tests parser composition via Include.
func TestIncludePreservesOrder(t *testing.T) {
	common := NewParser(Flag("--verbose").As("v"))
	p := NewParser(Arg("file")).Include(common)

	res, err := p.Parse([]string{"data.txt", "--verbose"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f, _ := res.String("file"); f != "data.txt" {
		t.Errorf("Expected file='data.txt', got %q", f)
	}
	if v, _ := res.Bool("v"); !v {
		t.Error("Expected included flag to match")
	}
}

// TestExtractionOrderShortCircuits tests that the first value failure in
// declaration order aborts extraction.
func TestExtractionOrderShortCircuits(t *testing.T) {
	p := NewParser(
		Param("--first").As("first").Required(),
		Param("--second").As("second").Required(),
	)

	_, err := p.Parse([]string{})
	var me *MatchError
	if !errors.As(err, &me) {
		t.Fatalf("Expected *MatchError, got %T", err)
	}
	if !strings.Contains(me.Message, "--first") {
		t.Errorf("Expected the first handler's failure, got %q", me.Message)
	}
}

// TestScanFailureAbortsWithoutPartialResult tests that a mid-scan failure
// produces no result at all.
func TestScanFailureAbortsWithoutPartialResult(t *testing.T) {
	p := NewParser(
		Flag("--verbose").As("v"),
		Expect("go").As("verb"),
	)

	res, err := p.Parse([]string{"--verbose", "stop"})
	if err == nil {
		t.Fatal("Expected scan failure")
	}
	if res != nil {
		t.Errorf("Expected nil result on failure, got %v", res.Keys())
	}
}

// TestResultKeysDeclarationOrder tests key iteration order.
func TestResultKeysDeclarationOrder(t *testing.T) {
	p := NewParser(
		Param("--b").As("b"),
		Param("--a").As("a"),
	)

	res, err := p.Parse([]string{"--a", "1", "--b", "2"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	keys := res.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Expected declaration order [b a], got %v", keys)
	}
}

// TestUnkeyedHandlerOmittedFromResult tests that handlers without a key
// still consume tokens but produce no result entry.
func TestUnkeyedHandlerOmittedFromResult(t *testing.T) {
	p := NewParser(
		Expect("do"),
		Arg("what"),
	)

	res, err := p.Parse([]string{"do", "thing"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Len() != 1 {
		t.Errorf("Expected only the keyed entry, got %v", res.Keys())
	}
	if w, _ := res.String("what"); w != "thing" {
		t.Errorf("Expected what='thing', got %q", w)
	}
}

// TestParserReusableAcrossRuns tests that per-run state does not leak
// between Parse calls.
func TestParserReusableAcrossRuns(t *testing.T) {
	p := NewParser(Arg("a"), Arg("b"))

	for i := 0; i < 3; i++ {
		res, err := p.Parse([]string{"x", "y"})
		if err != nil {
			t.Fatalf("Run %d failed: %v", i, err)
		}
		if a, _ := res.String("a"); a != "x" {
			t.Errorf("Run %d: expected a='x', got %q", i, a)
		}
	}
}

// TestParserConcurrentRuns tests that one parser is safe for concurrent
// Parse calls.
func TestParserConcurrentRuns(t *testing.T) {
	p := NewParser(
		Flag("--verbose").As("v"),
		Param("--out").As("o"),
		Arg("input"),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res, err := p.Parse([]string{"--verbose", "--out", "f", "in"})
				if err != nil {
					t.Errorf("Parse failed: %v", err)
					return
				}
				if in, _ := res.String("input"); in != "in" {
					t.Errorf("Expected input='in', got %q", in)
				}
			}
		}()
	}
	wg.Wait()
}

// BenchmarkParseSimple measures a typical flag/param/arg parse.
func BenchmarkParseSimple(b *testing.B) {
	p := NewParser(
		Flag("--verbose", "-v").As("verbose"),
		Param("--out", "-o").As("out"),
		Arg("input"),
	)
	args := []string{"-v", "-o", "out.txt", "in.txt"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseOneOf measures alternative selection.
func BenchmarkParseOneOf(b *testing.B) {
	add := NewParser(Expect("add").As("verb"), Param("--name").As("name"))
	remove := NewParser(Expect("remove").As("verb"), Arg("target"))
	p := NewParser(OneOf(add, remove).As("cmd"))
	args := []string{"remove", "widget"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}
