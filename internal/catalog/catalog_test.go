package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_LoadsBuiltInCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(c.Records) != 12 {
		t.Fatalf("expected 12 records, got %d", len(c.Records))
	}
	if len(c.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(c.Fields))
	}
	if err := Validate(c); err != nil {
		t.Fatalf("built-in catalog should validate: %v", err)
	}
	if got := c.TagColor("math"); got != "#0ea5e9" {
		t.Fatalf("unexpected math colour: %q", got)
	}
}

func TestDefault_OptionValueKinds(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	pub, ok := c.Descriptor(FieldPublic)
	if !ok {
		t.Fatal("public descriptor missing")
	}
	if !pub.Options[0].Value.IsBool() || pub.Options[0].Value.String() != "true" {
		t.Fatalf("public option should be boolean true, got %+v", pub.Options[0].Value)
	}
	regions, _ := c.Descriptor(FieldRegions)
	if regions.Options[0].Value.IsBool() || regions.Options[0].Value.String() != "ES" {
		t.Fatalf("regions option should be string ES, got %+v", regions.Options[0].Value)
	}
}

func TestSaveLoad_KeepsBooleanOptions(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := Save(p, c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), `value: "true"`) {
		t.Fatalf("boolean option written as string:\n%s", b)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pub, _ := got.Descriptor(FieldPublic)
	if !pub.Options[1].Value.IsBool() || pub.Options[1].Value.String() != "false" {
		t.Fatalf("unexpected option after reload: %+v", pub.Options[1].Value)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_RejectsNonScalarOption(t *testing.T) {
	doc := "fields:\n  - key: tags\n    options:\n      - label: x\n        value: [a, b]\n"
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error for list option value")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := &Catalog{
		Records: []Record{
			{Name: "A", Tags: []string{"math"}},
			{Name: "A", Tags: []string{"art"}},
			{Name: " "},
		},
		Fields: []FieldDescriptor{
			{Key: "colour"},
			{Key: FieldTags, Options: []Option{{Label: "Math", Value: StringValue("math")}}},
		},
	}
	err := Validate(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []error{ErrDuplicateRecord, ErrEmptyName, ErrUnknownField, ErrUnknownOption} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v in %v", want, err)
		}
	}
}

func TestRecordAttribute(t *testing.T) {
	r := Record{Name: "Physics", Public: false, Regions: []string{"HS"}}

	attr, ok := r.Attribute(FieldPublic)
	if !ok || attr.Multi || attr.Values[0] != "false" {
		t.Fatalf("unexpected public attribute: %+v ok=%v", attr, ok)
	}
	attr, ok = r.Attribute(FieldRegions)
	if !ok || !attr.Multi || len(attr.Values) != 1 {
		t.Fatalf("unexpected regions attribute: %+v ok=%v", attr, ok)
	}
	if _, ok := r.Attribute("colour"); ok {
		t.Fatal("unknown field should have no attribute")
	}
}

func TestKeywordSearch(t *testing.T) {
	records := []Record{{Name: "Earth Science"}, {Name: "Biology"}, {Name: "Creative Writing"}}

	got := KeywordSearch(records, "SCI earth")
	if len(got) != 1 || got[0].Name != "Earth Science" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got := KeywordSearch(records, "  "); len(got) != 3 {
		t.Fatalf("empty query should keep all, got %d", len(got))
	}
	if got := KeywordSearch(records, "i"); len(got) != 3 || got[0].Name != "Earth Science" || got[2].Name != "Creative Writing" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestFold_MatchesFinalSigma(t *testing.T) {
	if Fold("ΟΔΟΣ") != Fold("οδοσ") || Fold("οδος") != Fold("ΟΔΟΣ") {
		t.Fatalf("sigma forms fold differently: %q %q %q", Fold("ΟΔΟΣ"), Fold("οδοσ"), Fold("οδος"))
	}
	if got := Fold("Regions:HS"); got != "regions:hs" {
		t.Fatalf("Fold ascii = %q", got)
	}
}

func TestKeywordSearch_FoldsLikeFilterValues(t *testing.T) {
	records := []Record{{Name: "ΟΔΟΣ Studies"}, {Name: "Biology"}}

	got := KeywordSearch(records, "οδος")
	if len(got) != 1 || got[0].Name != "ΟΔΟΣ Studies" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestValidate_FoldsOptionValues(t *testing.T) {
	c := &Catalog{
		Records: []Record{{Name: "Roads", Tags: []string{"ΟΔΟΣ"}}},
		Fields: []FieldDescriptor{{
			Key:     FieldTags,
			Label:   "Subject Area",
			Options: []Option{{Label: "Roads", Value: StringValue("οδος")}},
		}},
	}
	if err := Validate(c); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
