package channel

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/inkml"
)

// Kind is the value type of a channel.
type Kind int8

// Kinds of channels, as named by the 'type' attribute of InkML channels.
const (
	Decimal Kind = iota // the InkML default
	Integer
	Double
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Double:
		return "double"
	case Boolean:
		return "boolean"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// KindFromString maps the 'type' attribute of a channel to a Kind.
// An empty string denotes the default kind (Decimal).
func KindFromString(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decimal":
		return Decimal, nil
	case "integer":
		return Integer, nil
	case "double":
		return Double, nil
	case "boolean":
		return Boolean, nil
	}
	return Decimal, inkml.Compliance("channel", "unknown channel type %q", s)
}

// --- Values ----------------------------------------------------------------

// Value is a single channel value. It is one of Int, Float or Bool.
type Value interface {
	isValue()
}

// Int is the value of an Integer channel.
type Int int64

// Float is the value of a Decimal or Double channel.
type Float float64

// Bool is the value of a Boolean channel.
type Bool bool

func (Int) isValue()   {}
func (Float) isValue() {}
func (Bool) isValue()  {}

func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (b Bool) String() string {
	if b {
		return "T"
	}
	return "F"
}

var errNotBoolean = errors.New("not a boolean")

// canonicalOf converts any value to float64, regardless of a kind.
func canonicalOf(v Value) float64 {
	switch x := v.(type) {
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	case Bool:
		if x {
			return 1
		}
		return 0
	}
	return 0
}

// --- Behaviour per kind ----------------------------------------------------

// Zero returns the zero-equivalent value of a kind.
func (k Kind) Zero() Value {
	switch k {
	case Integer:
		return Int(0)
	case Boolean:
		return Bool(false)
	}
	return Float(0)
}

// Parse reads a value of kind k from text. Leading and trailing white space
// is ignored. Malformed text results in an *inkml.ParseError.
// Integer values are 32 bit wide; larger numbers are a parse error.
func (k Kind) Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	switch k {
	case Integer:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Int(0), &inkml.ParseError{Text: text, Cause: err}
		}
		return Int(n), nil
	case Decimal, Double:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Float(0), &inkml.ParseError{Text: text, Cause: err}
		}
		return Float(f), nil
	case Boolean:
		switch strings.ToLower(s) {
		case "t", "true", "1":
			return Bool(true), nil
		case "f", "false", "0":
			return Bool(false), nil
		}
		return Bool(false), &inkml.ParseError{Text: text, Cause: errNotBoolean}
	}
	return nil, &inkml.ParseError{Text: text, Cause: fmt.Errorf("unknown kind %s", k)}
}

// Format writes a value in the canonical textual form of kind k.
// Values of a different kind are converted first.
func (k Kind) Format(v Value) string {
	v = k.coerce(v)
	switch x := v.(type) {
	case Int:
		return x.String()
	case Bool:
		return x.String()
	case Float:
		if k == Double {
			return strconv.FormatFloat(float64(x), 'g', -1, 64)
		}
		return strconv.FormatFloat(float64(x), 'f', -1, 64)
	}
	return ""
}

// ToCanonical converts a value to the canonical floating point representation.
func (k Kind) ToCanonical(v Value) float64 {
	return canonicalOf(k.coerce(v))
}

// FromCanonical converts a canonical number to a value of kind k.
// For Integer channels the number is truncated toward zero and clamped to
// 32 bits; for Boolean channels every non-zero number is true.
func (k Kind) FromCanonical(d float64) Value {
	switch k {
	case Integer:
		switch {
		case math.IsNaN(d):
			return Int(0)
		case d >= math.MaxInt32:
			return Int(math.MaxInt32)
		case d <= math.MinInt32:
			return Int(math.MinInt32)
		}
		return Int(int64(d))
	case Boolean:
		return Bool(d != 0)
	}
	return Float(d)
}

func (k Kind) coerce(v Value) Value {
	if v == nil {
		return k.Zero()
	}
	switch v.(type) {
	case Int:
		if k == Integer {
			return v
		}
	case Float:
		if k == Decimal || k == Double {
			return v
		}
	case Bool:
		if k == Boolean {
			return v
		}
	}
	return k.FromCanonical(canonicalOf(v))
}

// IsZero is a predicate wether v equals the zero-equivalent of kind k.
func (k Kind) IsZero(v Value) bool {
	return k.coerce(v) == k.Zero()
}
