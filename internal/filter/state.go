// Package filter holds the filter state of the catalog page and the
// predicate that applies it to records.
package filter

import "slices"

// State maps a filter field to its accepted values (lowercase, ordered,
// no duplicates). Fields keep the order in which they were first set so
// the derived token list is deterministic. A State is owned by a single
// interaction loop and is not safe for concurrent use.
type State struct {
	order  []string
	values map[string][]string
}

// NewState returns an empty state.
func NewState() *State {
	return &State{values: make(map[string][]string)}
}

// FromTokens returns a state built from tokens.
func FromTokens(tokens []string) *State {
	s := NewState()
	s.SetAllFromTokens(tokens)
	return s
}

// SetFieldValues replaces the accepted values for field. Values that
// normalise to "" are dropped since no token can carry them; an empty list
// clears the field.
func (s *State) SetFieldValues(field string, values []string) {
	norm := make([]string, 0, len(values))
	for _, v := range values {
		v = Normalize(v)
		if v != "" && !slices.Contains(norm, v) {
			norm = append(norm, v)
		}
	}
	if len(norm) == 0 {
		s.ClearField(field)
		return
	}
	if s.values == nil {
		s.values = make(map[string][]string)
	}
	if _, ok := s.values[field]; !ok {
		s.order = append(s.order, field)
	}
	s.values[field] = norm
}

// SetAllFromTokens rebuilds the whole state from field:value tokens.
// Malformed tokens are skipped.
func (s *State) SetAllFromTokens(tokens []string) {
	grouped := make(map[string][]string)
	var order []string
	for _, tok := range tokens {
		field, value, ok := ParseToken(tok)
		if !ok {
			continue
		}
		if _, seen := grouped[field]; !seen {
			order = append(order, field)
		}
		grouped[field] = append(grouped[field], value)
	}

	s.order = nil
	s.values = make(map[string][]string, len(order))
	for _, field := range order {
		s.SetFieldValues(field, grouped[field])
	}
}

// ClearField removes field from the state. Clearing an absent field is a no-op.
func (s *State) ClearField(field string) {
	if _, ok := s.values[field]; !ok {
		return
	}
	delete(s.values, field)
	s.order = slices.DeleteFunc(s.order, func(f string) bool { return f == field })
}

// Toggle adds value to field when it is not accepted yet and removes it
// otherwise, the way a checkbox click does.
func (s *State) Toggle(field, value string) {
	value = Normalize(value)
	current := s.Values(field)
	if slices.Contains(current, value) {
		s.SetFieldValues(field, slices.DeleteFunc(current, func(v string) bool { return v == value }))
		return
	}
	s.SetFieldValues(field, append(current, value))
}

// Tokens derives the selection token list: fields in the order they were
// set, values in the order they were accepted.
func (s *State) Tokens() []string {
	out := make([]string, 0, len(s.order))
	for _, field := range s.order {
		for _, v := range s.values[field] {
			out = append(out, FormatToken(field, v))
		}
	}
	return out
}

// Values returns a copy of the accepted values for field.
func (s *State) Values(field string) []string {
	return slices.Clone(s.values[field])
}

// Has reports whether value is accepted for field.
func (s *State) Has(field, value string) bool {
	return slices.Contains(s.values[field], Normalize(value))
}

// Fields returns the constrained fields in the order they were set.
func (s *State) Fields() []string {
	return slices.Clone(s.order)
}

// IsEmpty reports whether no field is constrained.
func (s *State) IsEmpty() bool {
	return len(s.order) == 0
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := NewState()
	for _, field := range s.order {
		c.order = append(c.order, field)
		c.values[field] = slices.Clone(s.values[field])
	}
	return c
}
