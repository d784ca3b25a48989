package engine

import (
	"github.com/roach88/playgraph/internal/rdf"
)

// Var names a query variable inside a pattern.
type Var string

// PatternTerm is a sealed interface over the two kinds of pattern
// component: a concrete term or a variable to bind. Only Bound and Var
// implement it.
type PatternTerm interface {
	patternTerm() // Sealed - only types in this package implement it
}

// Bound wraps a concrete term in a pattern position.
type Bound struct {
	Term rdf.Term
}

func (Bound) patternTerm() {}

func (Var) patternTerm() {}

// Pattern is one triple template of a basic graph pattern. The
// predicate is always concrete; queries never quantify over the
// vocabulary.
type Pattern struct {
	Subject   PatternTerm
	Predicate rdf.Predicate
	Object    PatternTerm
}

// Binding is one solution row: variable name to matched term. Rows are
// independent copies; they never alias store internals.
type Binding map[Var]rdf.Term

// Filter is a typed row predicate applied after the joins. Filters are
// how caller-supplied values constrain a query without any string
// interpolation.
type Filter func(Binding) bool

// evaluate runs the patterns left to right, propagating bindings and
// keeping only fully-satisfied rows.
func (e *Engine) evaluate(patterns []Pattern) []Binding {
	rows := []Binding{{}}
	for _, p := range patterns {
		var next []Binding
		for _, row := range rows {
			subject, subjectVar := resolve(p.Subject, row)
			object, objectVar := resolve(p.Object, row)
			for _, t := range e.store.Match(subject, p.Predicate, object) {
				extended := row.clone()
				if subjectVar != "" {
					extended[subjectVar] = t.Subject
				}
				if objectVar != "" {
					extended[objectVar] = t.Object
				}
				next = append(next, extended)
			}
		}
		rows = next
		if len(rows) == 0 {
			return nil
		}
	}
	return rows
}

// resolve turns a pattern component into a Match argument: a concrete
// term (possibly substituted from the row) plus the variable to bind
// when the component is still free. A nil term is the store's wildcard.
func resolve(pt PatternTerm, row Binding) (rdf.Term, Var) {
	switch c := pt.(type) {
	case Bound:
		return c.Term, ""
	case Var:
		if t, ok := row[c]; ok {
			return t, ""
		}
		return nil, c
	default:
		return nil, ""
	}
}

func (b Binding) clone() Binding {
	out := make(Binding, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	return out
}

// keep returns the rows satisfying every filter, preserving order.
func keep(rows []Binding, filters ...Filter) []Binding {
	if len(filters) == 0 {
		return rows
	}
	var out []Binding
	for _, row := range rows {
		ok := true
		for _, f := range filters {
			if !f(row) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row)
		}
	}
	return out
}

// text extracts the literal text bound to v. The second return is false
// when the variable is unbound or bound to a node; callers treat that
// as a row to exclude, mirroring the inner-join drop for entities that
// violate the one-literal-per-relation convention.
func text(row Binding, v Var) (string, bool) {
	l, ok := row[v].(rdf.Literal)
	if !ok {
		return "", false
	}
	return string(l), true
}
