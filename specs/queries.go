// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// queries.go: lookup indices over one enumeration.

package specs

import "fmt"

// member is the constraint of indexable kinds: q matches an entry when
// every field set in q agrees with it.
type member[S any] interface {
	Specs
	matches(q S) bool
}

// Queries indexes an enumeration by data, name and canonical name. It is
// immutable after construction and safe for concurrent use.
type Queries[S member[S]] struct {
	entries     []S
	byName      map[string]S
	byCanonical map[string][]S
}

// NewQueries indexes entries in their given order.
func NewQueries[S member[S]](entries []S) *Queries[S] {
	q := &Queries[S]{
		entries:     append([]S(nil), entries...),
		byName:      make(map[string]S, len(entries)),
		byCanonical: make(map[string][]S),
	}
	for _, e := range q.entries {
		q.byName[e.Name()] = e
		c := e.CanonicalName()
		q.byCanonical[c] = append(q.byCanonical[c], e)
	}
	return q
}

// All returns a copy of the enumeration.
func (q *Queries[S]) All() []S { return append([]S(nil), q.entries...) }

// Len is the enumeration size.
func (q *Queries[S]) Len() int { return len(q.entries) }

// Where filters the enumeration.
func (q *Queries[S]) Where(pred func(S) bool) []S {
	var out []S
	for _, e := range q.entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// WithData returns the single entry matching data.
func (q *Queries[S]) WithData(data S) (S, error) {
	var zero S
	found := q.Where(func(e S) bool { return e.matches(data) })
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%w: %+v", ErrNoMatch, data)
	case 1:
		return found[0], nil
	default:
		return zero, fmt.Errorf("%w: %d entries for %+v", ErrAmbiguousMatch, len(found), data)
	}
}

// HasName reports a display name.
func (q *Queries[S]) HasName(name string) bool {
	_, ok := q.byName[name]
	return ok
}

// WithName returns the entry with the display name.
func (q *Queries[S]) WithName(name string) (S, error) {
	e, ok := q.byName[name]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return e, nil
}

// HasCanonicalName reports a canonical name.
func (q *Queries[S]) HasCanonicalName(name string) bool {
	_, ok := q.byCanonical[name]
	return ok
}

// WithCanonicalName returns the first entry with the canonical name.
func (q *Queries[S]) WithCanonicalName(name string) (S, error) {
	es, ok := q.byCanonical[name]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: no solid with canonical name %q", ErrUnknownName, name)
	}
	return es[0], nil
}
