package claim

import "testing"

func TestResultTypedGetters(t *testing.T) {
	r := newResult()
	r.set("name", "demo")
	r.set("count", 3)
	r.set("on", true)

	if s, ok := r.String("name"); !ok || s != "demo" {
		t.Errorf("String = %q (ok=%v)", s, ok)
	}
	if n, ok := r.Int("count"); !ok || n != 3 {
		t.Errorf("Int = %d (ok=%v)", n, ok)
	}
	if b, ok := r.Bool("on"); !ok || !b {
		t.Errorf("Bool = %v (ok=%v)", b, ok)
	}

	// Wrong-type access is a safe miss, not a panic.
	if _, ok := r.Int("name"); ok {
		t.Error("Expected type mismatch to report absent")
	}
}

func TestResultMustGetters(t *testing.T) {
	r := newResult()
	r.set("name", "demo")

	if got := r.MustString("name", "fallback"); got != "demo" {
		t.Errorf("MustString = %q", got)
	}
	if got := r.MustString("missing", "fallback"); got != "fallback" {
		t.Errorf("MustString fallback = %q", got)
	}
	if got := r.MustInt("missing", 7); got != 7 {
		t.Errorf("MustInt fallback = %d", got)
	}
	if got := r.MustBool("missing", true); got != true {
		t.Errorf("MustBool fallback = %v", got)
	}
}

func TestResultStringsRejectsMixedSequence(t *testing.T) {
	r := newResult()
	r.set("mixed", []any{"a", 1})

	if _, ok := r.Strings("mixed"); ok {
		t.Error("Expected mixed sequence to fail Strings conversion")
	}
	if vs, ok := r.Values("mixed"); !ok || len(vs) != 2 {
		t.Errorf("Values = %v (ok=%v)", vs, ok)
	}
}

func TestResultSetDeduplicatesKeys(t *testing.T) {
	r := newResult()
	r.set("k", 1)
	r.set("k", 2)

	if len(r.Keys()) != 1 {
		t.Errorf("Expected one key, got %v", r.Keys())
	}
	if v, _ := r.Int("k"); v != 2 {
		t.Errorf("Expected last write to win, got %d", v)
	}
}
