package argser

import (
	"sort"

	"github.com/dzonerzy/go-argser/internal/fuzzy"
)

// positionalKey is reserved for positionals and never names an option
const positionalKey = "_"

// Schema is the compiled form of Definitions. It holds the lookups the parser
// consults for every token and is read-only once configured, so one Schema
// can serve concurrent Parse calls.
type Schema struct {
	names      map[string]string    // token name or alias -> canonical name
	converters map[string]Converter // canonical name -> converter, absent for flags
	repeatable map[string]struct{}  // canonical names that accumulate
	order      []string             // canonical names, sorted

	suggest     bool
	maxDistance int
}

// Compile normalizes defs into a Schema.
//
// Keys are walked in sorted order and each key registers itself before its
// alias, so when two options declare the same alias the one whose name sorts
// last wins.
func Compile(defs Definitions) *Schema {
	s := &Schema{
		names:       make(map[string]string, len(defs)*2),
		converters:  make(map[string]Converter, len(defs)),
		repeatable:  make(map[string]struct{}),
		order:       make([]string, 0, len(defs)),
		maxDistance: 2,
	}

	for name := range defs {
		if name == positionalKey {
			continue
		}
		s.order = append(s.order, name)
	}
	sort.Strings(s.order)

	for _, name := range s.order {
		def := defs[name]

		s.names[name] = name
		if def.alias != "" && def.alias != positionalKey {
			s.names[def.alias] = name
		}
		if !def.IsFlag() {
			s.converters[name] = def.convert
		}
		if def.many {
			s.repeatable[name] = struct{}{}
		}
	}

	return s
}

// SuggestOptions enables or disables "did you mean" suggestions on unknown
// options. Suggestions are off by default.
func (s *Schema) SuggestOptions(enabled bool) *Schema {
	s.suggest = enabled
	return s
}

// MaxDistance sets the maximum edit distance for suggestions
func (s *Schema) MaxDistance(distance int) *Schema {
	s.maxDistance = distance
	return s
}

// Canonical resolves a token name or alias to its option name.
func (s *Schema) Canonical(token string) (string, bool) {
	name, ok := s.names[token]
	return name, ok
}

// Converter returns the converter of a value-bearing option. Flags have none.
func (s *Schema) Converter(name string) (Converter, bool) {
	fn, ok := s.converters[name]
	return fn, ok
}

// Repeatable reports whether name accumulates its occurrences.
func (s *Schema) Repeatable(name string) bool {
	_, ok := s.repeatable[name]
	return ok
}

// Names returns the canonical option names in sorted order.
func (s *Schema) Names() []string {
	return append([]string(nil), s.order...)
}

// Parse parses args against the schema. args is copied, never modified.
func (s *Schema) Parse(args []string) (*Result, error) {
	return newParser(s, args).run()
}

// MustParse is like Parse but panics when parsing fails.
func (s *Schema) MustParse(args []string) *Result {
	res, err := s.Parse(args)
	if err != nil {
		panic(err)
	}
	return res
}

// newResult builds a result holding the default value of every option
func (s *Schema) newResult() *Result {
	r := &Result{
		Args:    make([]string, 0),
		entries: make(map[string]*entry, len(s.order)),
		order:   s.order,
	}
	for _, name := range s.order {
		_, valued := s.converters[name]
		r.entries[name] = &entry{
			flag: !valued,
			many: s.Repeatable(name),
		}
	}
	return r
}

// suggestion returns the closest known token to name, rendered with the dash
// prefix it would be typed with, or "" when nothing is close enough.
func (s *Schema) suggestion(name string) string {
	if !s.suggest {
		return ""
	}
	candidates := make([]string, 0, len(s.names))
	for token := range s.names {
		candidates = append(candidates, token)
	}
	// map order must not leak into tie-breaking
	sort.Strings(candidates)

	best := fuzzy.FindBestOption(name, candidates, s.maxDistance)
	if best == "" {
		return ""
	}
	if len([]rune(best)) == 1 {
		return "-" + best
	}
	return "--" + best
}
