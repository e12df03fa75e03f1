// Package argser is a small command-line argument parser.
//
// A caller describes the options it recognizes with a Definitions map and
// hands it, together with the raw arguments, to Parse:
//
//	res, err := argser.Parse(os.Args[1:], argser.Definitions{
//		"help": argser.Flag(),
//		"foo":  argser.String().Alias("f"),
//		"bar":  argser.Int().Alias("b").Many(),
//	})
//
// Parse never panics on malformed input. Unknown options and options missing
// their value stop parsing and are reported as an *Error next to a partially
// filled Result whose Args hold every token that was not consumed, so the
// caller can decide whether to print usage and exit.
//
// Tokens are read left to right. "--" ends option parsing; everything after it
// is positional. A single-dash token with more than one character ("-abc") is
// a cluster of short options and is expanded to "-a -b -c" before being
// resolved. Values are given inline ("--foo=x") or as the following token
// ("--foo x").
//
// Command peels an optional leading sub-command token off the arguments and is
// normally called before Parse.
package argser
