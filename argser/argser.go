package argser

import "os"

// Parse parses args against defs. It compiles defs on every call; use
// Compile once and Schema.Parse when parsing repeatedly.
//
// The returned Result is never nil. On failure err is an *Error for unknown
// options and missing values, or the error returned by a Converter.
func Parse(args []string, defs Definitions) (*Result, error) {
	return Compile(defs).Parse(args)
}

// ParseOS parses the process arguments, without the program name, against defs.
func ParseOS(defs Definitions) (*Result, error) {
	return Parse(osArgs(), defs)
}

// MustParse is like Parse but panics when parsing fails.
func MustParse(args []string, defs Definitions) *Result {
	return Compile(defs).MustParse(args)
}

// osArgs returns a copy of os.Args without the program name
func osArgs() []string {
	if len(os.Args) < 2 {
		return []string{}
	}
	return append([]string(nil), os.Args[1:]...)
}
