package argser

import (
	"strings"
	"unicode/utf8"
)

// Token syntax
const (
	Prefix       = '-'  // leading character of option tokens
	EndOfOptions = "--" // everything after it is positional
	Separator    = '='  // splits an inline value from the option name
)

// parseState represents the current state of the parser state machine
type parseState int

const (
	stateScanning   parseState = iota
	stateTerminated            // "--" seen
	stateUnknown               // unresolved option
	stateIncomplete            // value-bearing option without a value
	stateInvalid               // converter failed
	stateDone                  // input exhausted
)

// token is one element of the argument stream. Synthetic tokens come from
// short-flag cluster expansion; they are never read as "--" and never
// expanded again.
type token struct {
	text      string
	synthetic bool
}

// option is the shape of an option token: -name, --name or --name=value
type option struct {
	name     string
	value    string
	hasValue bool
	dashes   int
}

// matchOption matches arg against ^-+([^=]+)(?:=(.*))?$
func matchOption(arg string) (option, bool) {
	d := 0
	for d < len(arg) && arg[d] == Prefix {
		d++
	}
	if d == 0 {
		return option{}, false
	}
	// The name needs at least one non-'=' character. When the dashes run into
	// the end or into '=', the last dash becomes the name.
	if d == len(arg) || arg[d] == Separator {
		if d < 2 {
			return option{}, false
		}
		d--
	}

	opt := option{dashes: d}
	rest := arg[d:]
	if i := strings.IndexByte(rest, Separator); i >= 0 {
		opt.name, opt.value, opt.hasValue = rest[:i], rest[i+1:], true
	} else {
		opt.name = rest
	}
	return opt, true
}

// parser consumes one argument stream against a schema. It is single-use.
type parser struct {
	schema *Schema
	result *Result

	args    []string // caller's arguments, read-only
	pos     int      // next unread index in args
	pending []token  // synthetic tokens, consumed before args[pos:]

	state parseState
	err   error
}

func newParser(s *Schema, args []string) *parser {
	return &parser{
		schema: s,
		result: s.newResult(),
		args:   args,
	}
}

// run drives the state machine until a terminal state
func (p *parser) run() (*Result, error) {
	for p.state == stateScanning {
		tok, ok := p.next()
		if !ok {
			p.state = stateDone
			break
		}
		p.step(tok)
	}
	return p.result, p.err
}

// step handles a single token
func (p *parser) step(tok token) {
	if !tok.synthetic && tok.text == EndOfOptions {
		p.state = stateTerminated
		p.drain()
		return
	}

	opt, ok := matchOption(tok.text)
	if !ok {
		p.result.Args = append(p.result.Args, tok.text)
		return
	}

	// -abc is a cluster of short options
	if opt.dashes == 1 && utf8.RuneCountInString(opt.name) > 1 {
		p.expand(opt)
		return
	}

	name, ok := p.schema.Canonical(opt.name)
	if !ok {
		err := newError(tok.text, ReasonUnknown)
		err.Suggestion = p.schema.suggestion(opt.name)
		p.fail(stateUnknown, err, tok.text)
		return
	}

	e := p.result.entries[name]
	convert, valued := p.schema.Converter(name)
	if !valued {
		// flags ignore any inline value
		e.store(true)
		return
	}

	raw, fromStream, ok := p.value(opt)
	if !ok {
		p.fail(stateIncomplete, newError(tok.text, ReasonIncomplete), tok.text)
		return
	}

	v, err := convert(raw)
	if err != nil {
		if fromStream {
			p.fail(stateInvalid, err, tok.text, raw)
		} else {
			p.fail(stateInvalid, err, tok.text)
		}
		return
	}
	e.store(v)
}

// value returns the value for a value-bearing option: the inline value, or
// the next token unless that token is "--". fromStream reports whether a
// token was consumed.
func (p *parser) value(opt option) (raw string, fromStream, ok bool) {
	if opt.hasValue {
		return opt.value, false, true
	}
	next, ok := p.peek()
	if !ok || (!next.synthetic && next.text == EndOfOptions) {
		return "", false, false
	}
	p.next()
	return next.text, true, true
}

// expand replaces a short-option cluster with one synthetic token per
// character. An inline value stays with the last character.
func (p *parser) expand(opt option) {
	n := utf8.RuneCountInString(opt.name)
	synth := make([]token, 0, n+len(p.pending))
	i := 0
	for _, r := range opt.name {
		i++
		text := string(Prefix) + string(r)
		if i == n && opt.hasValue {
			text += string(Separator) + opt.value
		}
		synth = append(synth, token{text: text, synthetic: true})
	}
	p.pending = append(synth, p.pending...)
}

// fail stops parsing with err. leading holds the tokens consumed by the
// failing step; they go to the positionals ahead of everything unread.
func (p *parser) fail(state parseState, err error, leading ...string) {
	p.state = state
	p.err = err
	p.result.Args = append(p.result.Args, leading...)
	p.drain()
}

// drain moves every unread token to the positionals
func (p *parser) drain() {
	for _, tok := range p.pending {
		p.result.Args = append(p.result.Args, tok.text)
	}
	p.pending = nil
	p.result.Args = append(p.result.Args, p.args[p.pos:]...)
	p.pos = len(p.args)
}

func (p *parser) peek() (token, bool) {
	if len(p.pending) > 0 {
		return p.pending[0], true
	}
	if p.pos < len(p.args) {
		return token{text: p.args[p.pos]}, true
	}
	return token{}, false
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if !ok {
		return token{}, false
	}
	if len(p.pending) > 0 {
		p.pending = p.pending[1:]
	} else {
		p.pos++
	}
	return tok, true
}
