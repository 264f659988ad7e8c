package svt

import (
	"fmt"
	"slices"
	"strings"
)

// Symbol is a formal product and quotient of string tokens, such as unit
// abbreviations ("m", "g", "s"). Tokens present on both sides cancel when the
// symbol is built, so the numerator and denominator never share a token.
//
// Symbols compare as multisets; token order is kept only for display.
type Symbol struct {
	num []string
	den []string
}

// NewSymbol builds a symbol from numerator and denominator tokens.
// The argument slices are copied.
func NewSymbol(num, den []string) Symbol {
	n := slices.Clone(num)
	d := slices.Clone(den)
	n, d = cancelTokens(n, d)
	return Symbol{num: n, den: d}
}

// cancelTokens removes tokens that appear on both sides, one occurrence at
// a time, until the sides are disjoint.
func cancelTokens(num, den []string) ([]string, []string) {
	out := num[:0]
	for _, tok := range num {
		if i := slices.Index(den, tok); i >= 0 {
			den = slices.Delete(den, i, i+1)
			continue
		}
		out = append(out, tok)
	}
	return out, den
}

// Numerator returns a copy of the numerator tokens.
func (s Symbol) Numerator() []string { return slices.Clone(s.num) }

// Denominator returns a copy of the denominator tokens.
func (s Symbol) Denominator() []string { return slices.Clone(s.den) }

// Len returns the number of tokens on both sides.
func (s Symbol) Len() int { return len(s.num) + len(s.den) }

// IsEmpty reports whether the symbol has no tokens (dimensionless).
func (s Symbol) IsEmpty() bool { return s.Len() == 0 }

// Mul returns s*t.
func (s Symbol) Mul(t Symbol) Symbol {
	return NewSymbol(concat(s.num, t.num), concat(s.den, t.den))
}

// Div returns s/t.
func (s Symbol) Div(t Symbol) Symbol {
	return NewSymbol(concat(s.num, t.den), concat(s.den, t.num))
}

// Inverse returns 1/s.
func (s Symbol) Inverse() Symbol {
	return Symbol{num: slices.Clone(s.den), den: slices.Clone(s.num)}
}

// Pow raises the symbol to an integer power. A negative power inverts it and
// zero yields the empty symbol.
func (s Symbol) Pow(n int) Symbol {
	if n < 0 {
		return s.Inverse().Pow(-n)
	}
	num := make([]string, 0, len(s.num)*n)
	den := make([]string, 0, len(s.den)*n)
	for range n {
		num = append(num, s.num...)
		den = append(den, s.den...)
	}
	return Symbol{num: num, den: den}
}

// Equal reports multiset equality of both sides.
func (s Symbol) Equal(t Symbol) bool {
	return sameTokens(s.num, t.num) && sameTokens(s.den, t.den)
}

// String renders the symbol in its full form: "(a*b)" for a numerator
// only, "1/(a*b)" for a denominator only and "(a*b)/(c*d)" when both sides
// are present. Every side is parenthesized, even a single token. The empty
// symbol renders as "".
func (s Symbol) String() string {
	n, d := strings.Join(s.num, "*"), strings.Join(s.den, "*")
	switch {
	case n == "" && d == "":
		return ""
	case d == "":
		return "(" + n + ")"
	case n == "":
		return "1/(" + d + ")"
	default:
		return "(" + n + ")/(" + d + ")"
	}
}

// PowerString is the compact display form used for labels. Repeated tokens
// are grouped as token^n and parentheses appear only around a side with
// more than one term, so "(m*g)/(s*s)" becomes "(m*g)/s^2" and "(m)" is
// just "m".
func (s Symbol) PowerString() string {
	n := groupPowers(s.num)
	d := groupPowers(s.den)
	switch {
	case len(n) == 0 && len(d) == 0:
		return ""
	case len(d) == 0:
		return strings.Join(n, "*")
	case len(n) == 0:
		return "1/" + group(d)
	default:
		return group(n) + "/" + group(d)
	}
}

func group(terms []string) string {
	if len(terms) == 1 {
		return terms[0]
	}
	return "(" + strings.Join(terms, "*") + ")"
}

// groupPowers collapses repeated tokens into token^n, in order of first
// appearance.
func groupPowers(toks []string) []string {
	var order []string
	counts := make(map[string]int, len(toks))
	for _, tok := range toks {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	out := make([]string, len(order))
	for i, tok := range order {
		if c := counts[tok]; c > 1 {
			out[i] = fmt.Sprintf("%s^%d", tok, c)
		} else {
			out[i] = tok
		}
	}
	return out
}

func sameTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, tok := range a {
		counts[tok]++
	}
	for _, tok := range b {
		counts[tok]--
		if counts[tok] < 0 {
			return false
		}
	}
	return true
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
