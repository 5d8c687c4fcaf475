package catalog

import "strconv"

// Field names a filterable record attribute.
type Field string

const (
	FieldName    Field = "name"
	FieldPublic  Field = "public"
	FieldActive  Field = "active"
	FieldRegions Field = "regions"
	FieldTags    Field = "tags"
)

// Attribute is a record attribute in string form. Multi is set for
// set-valued attributes (regions, tags).
type Attribute struct {
	Values []string
	Multi  bool
}

var accessors = map[Field]func(Record) Attribute{
	FieldName:    func(r Record) Attribute { return Attribute{Values: []string{r.Name}} },
	FieldPublic:  func(r Record) Attribute { return Attribute{Values: []string{strconv.FormatBool(r.Public)}} },
	FieldActive:  func(r Record) Attribute { return Attribute{Values: []string{strconv.FormatBool(r.Active)}} },
	FieldRegions: func(r Record) Attribute { return Attribute{Values: r.Regions, Multi: true} },
	FieldTags:    func(r Record) Attribute { return Attribute{Values: r.Tags, Multi: true} },
}

// KnownFields returns every field that has an accessor, in column order.
func KnownFields() []Field {
	return []Field{FieldName, FieldPublic, FieldActive, FieldRegions, FieldTags}
}

// Known reports whether f maps to a record attribute.
func (f Field) Known() bool {
	_, ok := accessors[f]
	return ok
}

// Attribute returns the record's value for f. ok is false when f is not a
// record attribute.
func (r Record) Attribute(f Field) (attr Attribute, ok bool) {
	get, ok := accessors[f]
	if !ok {
		return Attribute{}, false
	}
	return get(r), true
}
