package filter

import (
	"slices"

	"github.com/kamusis/catalog-cli/internal/catalog"
	"go.uber.org/zap"
)

// Evaluator applies a State to catalog records. Schema mismatches (a state
// field no record attribute backs) are reported through the logger and
// treated as non-matches.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator returns an Evaluator logging diagnostics to log. A nil
// logger discards them.
func NewEvaluator(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{log: log}
}

type constraint struct {
	field    catalog.Field
	accepted []string
	known    bool
}

// Filter returns the records that satisfy every constrained field of s,
// in their original order. Within a set-valued field any accepted value
// matches; a single-valued field must equal the first accepted value.
func (e *Evaluator) Filter(records []catalog.Record, s *State) []catalog.Record {
	var cs []constraint
	if s != nil {
		for _, field := range s.Fields() {
			accepted := s.Values(field)
			if len(accepted) == 0 {
				continue
			}
			f := catalog.Field(field)
			c := constraint{field: f, accepted: accepted, known: f.Known()}
			if !c.known {
				e.log.Warn("filter field has no record attribute, no record matches it",
					zap.String("field", field),
					zap.Strings("values", accepted))
			}
			cs = append(cs, c)
		}
	}

	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, cs) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r catalog.Record, cs []constraint) bool {
	for _, c := range cs {
		if !c.known {
			return false
		}
		attr, _ := r.Attribute(c.field)
		if !matches(attr, c.accepted) {
			return false
		}
	}
	return true
}

func matches(attr catalog.Attribute, accepted []string) bool {
	if attr.Multi {
		for _, v := range attr.Values {
			if slices.Contains(accepted, Normalize(v)) {
				return true
			}
		}
		return false
	}
	if len(attr.Values) == 0 {
		return false
	}
	return Normalize(attr.Values[0]) == accepted[0]
}

// CountMatching counts the records whose field holds value
// (case-insensitive). It is meant to run over the already filtered records.
func (e *Evaluator) CountMatching(records []catalog.Record, field, value string) int {
	f := catalog.Field(field)
	if !f.Known() {
		e.log.Warn("count requested for field with no record attribute",
			zap.String("field", field),
			zap.String("value", value))
		return 0
	}
	want := Normalize(value)
	n := 0
	for _, r := range records {
		attr, _ := r.Attribute(f)
		for _, v := range attr.Values {
			if Normalize(v) == want {
				n++
				break
			}
		}
	}
	return n
}

// OptionCount is one filter option annotated with its selection token and
// the number of records it matches.
type OptionCount struct {
	Option catalog.Option
	Token  string
	Count  int
}

// FieldCounts groups the option counts of one filter field.
type FieldCounts struct {
	Field   catalog.FieldDescriptor
	Options []OptionCount
}

// OptionCounts annotates every option of fields with its count over records.
func (e *Evaluator) OptionCounts(records []catalog.Record, fields []catalog.FieldDescriptor) []FieldCounts {
	out := make([]FieldCounts, 0, len(fields))
	for _, d := range fields {
		fc := FieldCounts{Field: d, Options: make([]OptionCount, 0, len(d.Options))}
		for _, o := range d.Options {
			v := o.Value.String()
			fc.Options = append(fc.Options, OptionCount{
				Option: o,
				Token:  FormatToken(string(d.Key), Normalize(v)),
				Count:  e.CountMatching(records, string(d.Key), v),
			})
		}
		out = append(out, fc)
	}
	return out
}

// Result is everything a page needs to render one state.
type Result struct {
	Records []catalog.Record
	Total   int
	Counts  []FieldCounts
	Tokens  []string
}

// Evaluate filters c by s, narrows the rows by the keyword query and
// computes the option counts over the visible rows.
func (e *Evaluator) Evaluate(c *catalog.Catalog, s *State, query string) Result {
	if s == nil {
		s = NewState()
	}
	rows := catalog.KeywordSearch(e.Filter(c.Records, s), query)
	return Result{
		Records: rows,
		Total:   len(c.Records),
		Counts:  e.OptionCounts(rows, c.Fields),
		Tokens:  s.Tokens(),
	}
}
