// Package expression isolates the text rewriting that turns free-form student
// input into something an expression evaluator accepts, and separately into a
// typeset-friendly display form. The rewriting is pure string surgery; it
// never errors, and evaluation failures are caught downstream.
package expression

import (
	"regexp"
	"strings"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	parenFact   = regexp.MustCompile(`\(([^()]*)\)!`)
	atomFact    = regexp.MustCompile(`([a-z0-9.]+)!`)
	bareExpTerm = regexp.MustCompile(`e\^([+-]?[a-z0-9.]+(?:\*[a-z0-9.]+)*)`)
	implicitMul = regexp.MustCompile(`([0-9])([a-z(])`)

	displayParenPow = regexp.MustCompile(`\^\(([^()]*)\)`)
	displayBarePow  = regexp.MustCompile(`\^([+-]?[A-Za-z0-9.]+)`)
)

// ForEval rewrites raw input into the evaluable form: lower-case, no
// whitespace, postfix factorials as fact(...), e^ exponentials as exp(...)
// and implicit digit-letter multiplication made explicit. Applying ForEval
// to its own output is a no-op.
func ForEval(raw string) string {
	s := strings.ToLower(whitespace.ReplaceAllString(raw, ""))
	s = parenFact.ReplaceAllString(s, "fact($1)")
	s = atomFact.ReplaceAllString(s, "fact($1)")
	s = rewriteExp(s)
	s = implicitMul.ReplaceAllString(s, "$1*$2")
	return s
}

// ForDisplay rewrites raw input into a typeset form: whitespace stripped,
// exponential calls back in e^{...} notation, exponent terms braced for
// correct grouping, and explicit multiplication as a centered dot.
func ForDisplay(raw string) string {
	s := whitespace.ReplaceAllString(raw, "")
	s = rewriteExpDisplay(s)
	s = displayParenPow.ReplaceAllString(s, "^{$1}")
	s = displayBarePow.ReplaceAllString(s, "^{$1}")
	s = strings.ReplaceAll(s, "*", "·")
	return s
}

// rewriteExp converts every e^<exponent> into an explicit exp(...) call so
// operator precedence cannot misparse the exponent. Parenthesized exponents
// are matched with a balance scan; bare exponents take a signed product term.
func rewriteExp(s string) string {
	for {
		i := strings.Index(s, "e^")
		if i < 0 {
			return s
		}
		rest := s[i+2:]
		if strings.HasPrefix(rest, "(") {
			j := matchParen(rest)
			if j < 0 {
				// Unbalanced input; leave it for the evaluator to reject.
				return s
			}
			s = s[:i] + "exp" + rest[:j+1] + rest[j+1:]
			continue
		}
		loc := bareExpTerm.FindStringIndex(s[i:])
		if loc == nil || loc[0] != 0 {
			// "e^" with nothing usable after it; hand it downstream as-is.
			return s
		}
		term := s[i+2 : i+loc[1]]
		end := i + loc[1]
		if end < len(s) && s[end] == '^' {
			if j := strings.LastIndex(term, "*"); j >= 0 {
				// The trailing factor owns the caret ("e^-2*2^x"): it is the
				// base of a new power, not part of the exponent.
				end -= len(term) - j
				term = term[:j]
			} else {
				// A power inside the exponent ("e^-x^2"): extend through it.
				k := end + 1
				if k < len(s) && (s[k] == '-' || s[k] == '+') {
					k++
				}
				for k < len(s) && isAtomChar(s[k]) {
					k++
				}
				term += s[end:k]
				end = k
			}
		}
		s = s[:i] + "exp(" + term + ")" + s[end:]
	}
}

func isAtomChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '.'
}

func rewriteExpDisplay(s string) string {
	for {
		i := strings.Index(s, "exp(")
		if i < 0 {
			break
		}
		rest := s[i+3:]
		j := matchParen(rest)
		if j < 0 {
			break
		}
		s = s[:i] + "e^{" + rest[1:j] + "}" + s[j+1+i+3:]
	}
	return s
}

// matchParen returns the index of the parenthesis closing s[0] (which must
// be '('), or -1 when unbalanced.
func matchParen(s string) int {
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
