package argser

// entry holds the parsed state of one option
type entry struct {
	flag bool // consumes no value
	many bool // accumulates occurrences

	set    bool // single-valued: a value has been stored
	value  any  // single-valued: last stored value (true for flags)
	values []any
}

func (e *entry) store(v any) {
	if e.many {
		e.values = append(e.values, v)
		return
	}
	e.value = v
	e.set = true
}

// Result is the outcome of a parse.
type Result struct {
	// Args holds every token not consumed as an option name or value, in the
	// order encountered. When parsing stops early the unconsumed tokens follow.
	Args []string

	entries map[string]*entry
	order   []string
}

// Names returns the option names known to the result in sorted order.
func (r *Result) Names() []string {
	return append([]string(nil), r.order...)
}

// Has reports whether name was given at least once on the command line.
func (r *Result) Has(name string) bool {
	e, ok := r.entries[name]
	if !ok {
		return false
	}
	if e.many {
		return len(e.values) > 0
	}
	return e.set
}

// Count returns how many times name was given. Single-valued options report
// at most 1.
func (r *Result) Count(name string) int {
	e, ok := r.entries[name]
	if !ok {
		return 0
	}
	if e.many {
		return len(e.values)
	}
	if e.set {
		return 1
	}
	return 0
}

// Bool returns the state of a flag. For repeatable flags it reports whether
// the flag occurred at all; for value options whether a value was stored.
func (r *Result) Bool(name string) bool {
	e, ok := r.entries[name]
	if !ok {
		return false
	}
	if !e.flag {
		return r.Has(name)
	}
	if e.many {
		return len(e.values) > 0
	}
	b, _ := e.value.(bool)
	return b
}

// Lookup returns the value of a single-valued option and whether it was set.
// Flags report (false, false) until they occur. Repeatable options return
// their last value.
func (r *Result) Lookup(name string) (any, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	if e.many {
		if len(e.values) == 0 {
			return nil, false
		}
		return e.values[len(e.values)-1], true
	}
	if !e.set {
		if e.flag {
			return false, false
		}
		return nil, false
	}
	return e.value, true
}

// String returns the value of a string option.
func (r *Result) String(name string) (string, bool) {
	return Get[string](r, name)
}

// Values returns a copy of every value stored for a repeatable option in the
// order given. Single-valued options return their value as a one-element
// slice when set.
func (r *Result) Values(name string) []any {
	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	if e.many {
		return append(make([]any, 0, len(e.values)), e.values...)
	}
	if e.set {
		return []any{e.value}
	}
	return []any{}
}

// Strings returns the string values of a repeatable string option.
func (r *Result) Strings(name string) []string {
	return All[string](r, name)
}

// Map returns a snapshot of all option values keyed by name: bool for flags,
// nil or the value for single-valued options, []any for repeatable ones.
// The positionals are stored under "_".
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.entries)+1)
	for name, e := range r.entries {
		switch {
		case e.many:
			m[name] = append(make([]any, 0, len(e.values)), e.values...)
		case e.set:
			m[name] = e.value
		case e.flag:
			m[name] = false
		default:
			m[name] = nil
		}
	}
	m[positionalKey] = append(make([]string, 0, len(r.Args)), r.Args...)
	return m
}

// Get returns the value of name as a T. It reports false when the option is
// unset, unknown, or holds a value of another type.
func Get[T any](r *Result, name string) (T, bool) {
	var zero T
	v, ok := r.Lookup(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// All returns every value of a repeatable option that is a T, in order.
func All[T any](r *Result, name string) []T {
	values := r.Values(name)
	if values == nil {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
