package claim

import "os"

// Required replaces an absent extraction result with a missing-required
// failure naming the handler's activators or key. Present values and
// failures pass through untouched.
func (h Handler) Required() Handler {
	base := h.value
	h.value = func(in ValueInput) (any, bool, error) {
		v, present, err := base(in)
		if err != nil {
			return nil, false, err
		}
		if !present {
			return nil, false, errMissingRequired(in.Display)
		}
		return v, true, nil
	}
	return h
}

// Map transforms a present value through f. Absent values stay absent and
// failures stay failures. An error from f becomes a validation failure
// unless it already is a MatchError.
func (h Handler) Map(f func(any) (any, error)) Handler {
	base := h.value
	h.value = func(in ValueInput) (any, bool, error) {
		v, present, err := base(in)
		if err != nil || !present {
			return v, present, err
		}
		mapped, err := f(v)
		if err != nil {
			if me, ok := err.(*MatchError); ok {
				return nil, false, me
			}
			return nil, false, errValidation(in.Display, err)
		}
		return mapped, true, nil
	}
	return h
}

// Default replaces an absent value with v. Failures and present values pass
// through untouched.
func (h Handler) Default(v any) Handler {
	base := h.value
	h.value = func(in ValueInput) (any, bool, error) {
		got, present, err := base(in)
		if err != nil {
			return nil, false, err
		}
		if !present {
			return v, true, nil
		}
		return got, true, nil
	}
	return h
}

// Repeat lifts a handler to claim any number of groups, one per scan call.
// The base once-only guard is bypassed by hiding prior claims from the base
// scan. Extraction applies the base single-group value function to each
// claimed group independently and collects the results in claim order,
// short-circuiting on the first failure. With no claims the value is
// absent, so Required and Default compose as usual.
func (h Handler) Repeat() Handler {
	baseScan := h.scan
	baseValue := h.value
	h.scan = func(in ScanInput) (*Claim, error) {
		in.Prior = nil
		return baseScan(in)
	}
	h.value = func(in ValueInput) (any, bool, error) {
		if len(in.Groups) == 0 {
			return nil, false, nil
		}
		out := make([]any, 0, len(in.Groups))
		for _, g := range in.Groups {
			v, present, err := baseValue(ValueInput{Groups: []Claim{g}, Display: in.Display})
			if err != nil {
				return nil, false, err
			}
			if present {
				out = append(out, v)
			}
		}
		return out, true, nil
	}
	return h
}

// FromEnv fills an absent value from the first set environment variable, in
// listed precedence order. Command-line input always wins; combine with
// Default for a final fallback.
func (h Handler) FromEnv(names ...string) Handler {
	base := h.value
	h.value = func(in ValueInput) (any, bool, error) {
		v, present, err := base(in)
		if err != nil || present {
			return v, present, err
		}
		for _, name := range names {
			if env, ok := os.LookupEnv(name); ok {
				return env, true, nil
			}
		}
		return nil, false, nil
	}
	return h
}
