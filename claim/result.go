package claim

// Result maps handler keys to extracted values. Only present values get an
// entry; Keys preserves handler declaration order. The container is
// deliberately explicit — value types are whatever each handler's
// extraction produced (bool for Flag, string for Param/Arg/Expect, *Result
// for OneOf, []any for Repeat, anything for Map).
type Result struct {
	keys   []string
	values map[string]any
}

func newResult() *Result {
	return &Result{values: make(map[string]any)}
}

func (r *Result) set(key string, v any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Has reports whether a value is present for key.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the raw value for key.
func (r *Result) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the present keys in handler declaration order.
func (r *Result) Keys() []string {
	return r.keys
}

// Len returns the number of present values.
func (r *Result) Len() int {
	return len(r.keys)
}

// String retrieves a string value (safe access).
func (r *Result) String(key string) (string, bool) {
	if v, ok := r.values[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// MustString retrieves a string value with a default fallback.
func (r *Result) MustString(key, defaultValue string) string {
	if s, ok := r.String(key); ok {
		return s
	}
	return defaultValue
}

// Bool retrieves a bool value (safe access).
func (r *Result) Bool(key string) (bool, bool) {
	if v, ok := r.values[key]; ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// MustBool retrieves a bool value with a default fallback.
func (r *Result) MustBool(key string, defaultValue bool) bool {
	if b, ok := r.Bool(key); ok {
		return b
	}
	return defaultValue
}

// Int retrieves an int value, typically produced by a Map combinator.
func (r *Result) Int(key string) (int, bool) {
	if v, ok := r.values[key]; ok {
		if n, ok := v.(int); ok {
			return n, true
		}
	}
	return 0, false
}

// MustInt retrieves an int value with a default fallback.
func (r *Result) MustInt(key string, defaultValue int) int {
	if n, ok := r.Int(key); ok {
		return n
	}
	return defaultValue
}

// Values retrieves a Repeat sequence as extracted.
func (r *Result) Values(key string) ([]any, bool) {
	if v, ok := r.values[key]; ok {
		if vs, ok := v.([]any); ok {
			return vs, true
		}
	}
	return nil, false
}

// Strings retrieves a Repeat sequence whose elements are all strings.
func (r *Result) Strings(key string) ([]string, bool) {
	vs, ok := r.Values(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Sub retrieves a nested Result produced by a OneOf handler.
func (r *Result) Sub(key string) (*Result, bool) {
	if v, ok := r.values[key]; ok {
		if res, ok := v.(*Result); ok {
			return res, true
		}
	}
	return nil, false
}
