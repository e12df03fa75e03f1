package argser

// Command splits a leading command token off args.
//
// With no allowed commands the first token is the command unless it starts
// with '-'. Otherwise it must equal one of allowed. At most one token is taken.
// rest is always a fresh slice; when ok is false it holds all of args.
func Command(args []string, allowed ...string) (cmd string, rest []string, ok bool) {
	rest = append(make([]string, 0, len(args)), args...)
	if len(rest) == 0 {
		return "", rest, false
	}

	first := rest[0]
	if len(allowed) == 0 {
		if len(first) > 0 && first[0] == Prefix {
			return "", rest, false
		}
		return first, rest[1:], true
	}

	for _, c := range allowed {
		if c == first {
			return first, rest[1:], true
		}
	}
	return "", rest, false
}

// CommandOS is Command applied to the process arguments without the program name.
func CommandOS(allowed ...string) (cmd string, rest []string, ok bool) {
	return Command(osArgs(), allowed...)
}
