// Package formula parses and evaluates the weighted-sum expressions used by
// track base formulas and program modifier formulas, e.g. "2a+ang+f" or
// "(math+info)". An expression is a '+'-separated list of terms; each term is
// an optional decimal coefficient (default 1) immediately followed by a
// subject identifier. Parsing can fail; evaluating a parsed expression cannot.
package formula

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is one weighted subject reference in a parsed expression.
type Term struct {
	Coefficient float64
	Subject     string
}

// Expression is a parsed formula: the sum of its terms.
type Expression []Term

// Parse builds an Expression from a raw formula string. Parentheses are
// stripped and matching is case-insensitive. Any term that is not an optional
// decimal coefficient followed by a subject identifier is an error; use
// EvalLenient for untrusted per-request input.
func Parse(raw string) (Expression, error) {
	expr := make(Expression, 0, 4)
	for _, part := range splitTerms(raw) {
		term, ok := scanTerm(part)
		if !ok {
			return nil, fmt.Errorf("formula %q: malformed term %q", raw, part)
		}
		expr = append(expr, term)
	}
	if len(expr) == 0 {
		return nil, fmt.Errorf("formula %q: no terms", raw)
	}
	return expr, nil
}

// Evaluate computes the weighted sum of the expression against the given
// scores. Subjects absent from the mapping contribute 0.
func (e Expression) Evaluate(scores map[string]float64) float64 {
	var total float64
	for _, term := range e {
		total += term.Coefficient * scores[term.Subject]
	}
	return total
}

// Subjects returns the subject identifiers referenced by the expression, in
// term order.
func (e Expression) Subjects() []string {
	out := make([]string, 0, len(e))
	for _, term := range e {
		out = append(out, term.Subject)
	}
	return out
}

// EvalLenient evaluates a raw expression string, silently skipping malformed
// terms and defaulting absent scores to 0. It never fails: a fully malformed
// or empty expression evaluates to 0. This is the permissive per-request
// path; catalog formulas are validated with Parse at load time instead.
func EvalLenient(raw string, scores map[string]float64) float64 {
	var total float64
	for _, part := range splitTerms(raw) {
		term, ok := scanTerm(part)
		if !ok {
			continue
		}
		total += term.Coefficient * scores[term.Subject]
	}
	return total
}

func splitTerms(raw string) []string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	if cleaned == "" {
		return nil
	}
	parts := strings.Split(cleaned, "+")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// scanTerm tokenizes a single term: an optional decimal coefficient prefix
// (digits and at most one dot) followed by a subject identifier made of
// lowercase letters and underscores.
func scanTerm(part string) (Term, bool) {
	if part == "" {
		return Term{}, false
	}
	i := 0
	dot := false
	for i < len(part) {
		c := part[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	subject := part[i:]
	if subject == "" || !isSubjectIdent(subject) {
		return Term{}, false
	}
	coefficient := 1.0
	if i > 0 {
		parsed, err := strconv.ParseFloat(part[:i], 64)
		if err != nil {
			return Term{}, false
		}
		coefficient = parsed
	}
	return Term{Coefficient: coefficient, Subject: subject}, true
}

func isSubjectIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && c != '_' {
			return false
		}
	}
	return true
}
