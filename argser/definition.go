package argser

import (
	"strconv"
	"time"
)

// Converter turns the raw string given for an option into its value.
// Errors returned by a Converter are handed back to the caller of Parse as-is.
type Converter func(value string) (any, error)

// valueKind is the tag of a Definition
type valueKind int

const (
	kindFlag   valueKind = iota // no value, presence sets true
	kindString                  // raw string value
	kindValue                   // converted value
)

// String returns the string representation of the kind
func (k valueKind) String() string {
	switch k {
	case kindFlag:
		return "flag"
	case kindString:
		return "string"
	case kindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Definition describes a single recognized option. The zero value is a flag.
//
// Definitions are values: Alias and Many return modified copies, so a shared
// Definition can be reused across several schemas.
type Definition struct {
	kind    valueKind
	convert Converter
	alias   string
	many    bool
}

// Definitions maps option names to their definitions. The key "_" is reserved
// for positionals and never defines an option.
type Definitions map[string]Definition

// Flag defines an option that takes no value.
func Flag() Definition {
	return Definition{kind: kindFlag}
}

// String defines an option whose value is the raw string.
func String() Definition {
	return Definition{kind: kindString, convert: identity}
}

// Value defines an option whose value is produced by fn.
// A nil fn is treated like String.
func Value[T any](fn func(string) (T, error)) Definition {
	if fn == nil {
		return String()
	}
	return Definition{
		kind: kindValue,
		convert: func(s string) (any, error) {
			v, err := fn(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// Int defines an option holding a base-10 int.
func Int() Definition { return Value(strconv.Atoi) }

// Float defines an option holding a float64.
func Float() Definition {
	return Value(func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// Bool defines an option whose value is parsed with strconv.ParseBool.
// Unlike Flag it always consumes a value.
func Bool() Definition { return Value(strconv.ParseBool) }

// Duration defines an option holding a time.Duration.
func Duration() Definition { return Value(time.ParseDuration) }

// Alias returns a copy of d that is also reachable under name.
// An empty alias or "_" is never registered.
func (d Definition) Alias(name string) Definition {
	d.alias = name
	return d
}

// Many returns a copy of d whose occurrences accumulate instead of overwrite.
func (d Definition) Many() Definition {
	d.many = true
	return d
}

// IsFlag reports whether the option consumes no value.
func (d Definition) IsFlag() bool { return d.kind == kindFlag || d.convert == nil }

// IsRepeatable reports whether the option accumulates occurrences.
func (d Definition) IsRepeatable() bool { return d.many }

// AliasName returns the declared alias, if any.
func (d Definition) AliasName() string { return d.alias }

func identity(s string) (any, error) { return s, nil }
