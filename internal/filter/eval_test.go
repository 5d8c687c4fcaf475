package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loadDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func names(records []catalog.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter_EmptyStateIsIdentity(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)

	if diff := cmp.Diff(c.Records, e.Filter(c.Records, NewState())); diff != "" {
		t.Fatalf("empty state changed records (-want +got):\n%s", diff)
	}
	assert.Len(t, e.Filter(c.Records, nil), len(c.Records))
}

func TestFilter_PublicTrue(t *testing.T) {
	c := loadDefault(t)
	s := NewState()
	s.SetFieldValues("public", []string{"true"})

	got := NewEvaluator(nil).Filter(c.Records, s)

	want := []string{"Biology", "Chemistry", "Geometry", "World History", "American Literature", "Calculus", "Ancient Civilizations"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestFilter_TagsAndRegions(t *testing.T) {
	c := loadDefault(t)
	s := FromTokens([]string{"tags:math", "regions:hs"})

	got := NewEvaluator(nil).Filter(c.Records, s)

	assert.Equal(t, []string{"Physics", "Algebra", "Geometry", "Calculus"}, names(got))
}

func TestFilter_ClearAbsentFieldIsNoop(t *testing.T) {
	c := loadDefault(t)
	s := NewState()
	s.ClearField("public")

	assert.Equal(t, names(c.Records), names(NewEvaluator(nil).Filter(c.Records, s)))
}

func TestFilter_MalformedTokenIgnored(t *testing.T) {
	c := loadDefault(t)
	s := FromTokens([]string{"publictrue"})

	assert.True(t, s.IsEmpty())
	assert.Len(t, NewEvaluator(nil).Filter(c.Records, s), len(c.Records))
}

func TestFilter_CaseInsensitive(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)

	upper := e.Filter(c.Records, FromTokens([]string{"public:TRUE", "regions:Hs"}))
	lower := e.Filter(c.Records, FromTokens([]string{"public:true", "regions:hs"}))

	assert.NotEmpty(t, lower)
	assert.Equal(t, names(lower), names(upper))
}

func TestFilter_SetFieldIsOrWithinField(t *testing.T) {
	c := loadDefault(t)
	got := NewEvaluator(nil).Filter(c.Records, FromTokens([]string{"tags:history", "tags:literature"}))

	assert.Equal(t, []string{"English", "World History", "American Literature", "Creative Writing", "Ancient Civilizations"}, names(got))
}

func TestFilter_SingleValuedUsesFirstAccepted(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)

	got := e.Filter(c.Records, FromTokens([]string{"active:false", "active:true"}))

	assert.Equal(t, []string{"Physics", "Calculus"}, names(got))
}

func TestFilter_SubsetPreservesOrder(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)
	states := [][]string{
		{"active:true"},
		{"regions:es", "tags:science"},
		{"public:false", "regions:ms"},
		{"name:physics"},
	}
	for _, tokens := range states {
		got := e.Filter(c.Records, FromTokens(tokens))
		i := 0
		for _, r := range got {
			for i < len(c.Records) && c.Records[i].Name != r.Name {
				i++
			}
			require.Less(t, i, len(c.Records), "record %q out of order for %v", r.Name, tokens)
			i++
		}
	}
}

func TestFilter_DisjointFieldsCompose(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)
	s1 := FromTokens([]string{"public:true"})
	s2 := FromTokens([]string{"regions:ms", "tags:science"})
	both := FromTokens(append(s1.Tokens(), s2.Tokens()...))

	chained := e.Filter(e.Filter(c.Records, s1), s2)

	assert.Equal(t, names(e.Filter(c.Records, both)), names(chained))
	assert.Equal(t, []string{"Biology", "Chemistry"}, names(chained))
}

func TestFilter_UnknownFieldIsNonMatchWithDiagnostic(t *testing.T) {
	c := loadDefault(t)
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEvaluator(zap.New(core))

	got := e.Filter(c.Records, FromTokens([]string{"colour:red"}))

	assert.Empty(t, got)
	entries := logs.FilterField(zap.String("field", "colour")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestCountMatching(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)

	assert.Equal(t, 7, e.CountMatching(c.Records, "public", "true"))
	assert.Equal(t, 7, e.CountMatching(c.Records, "public", "TRUE"))
	assert.Equal(t, 10, e.CountMatching(c.Records, "regions", "hs"))
	assert.Equal(t, 0, e.CountMatching(nil, "tags", "math"))

	filtered := e.Filter(c.Records, FromTokens([]string{"tags:math"}))
	assert.Equal(t, 2, e.CountMatching(filtered, "public", "false"))
}

func TestCountMatching_FoldsFinalSigma(t *testing.T) {
	e := NewEvaluator(nil)
	records := []catalog.Record{{Name: "Roads", Tags: []string{"ΟΔΟΣ"}}}

	assert.Equal(t, 1, e.CountMatching(records, "tags", "οδοσ"))
	assert.Len(t, e.Filter(records, FromTokens([]string{"tags:οδος"})), 1)
}

func TestCountMatching_UnknownField(t *testing.T) {
	c := loadDefault(t)
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEvaluator(zap.New(core))

	assert.Equal(t, 0, e.CountMatching(c.Records, "colour", "red"))
	assert.Equal(t, 1, logs.Len())
}

func TestEvaluate(t *testing.T) {
	c := loadDefault(t)
	e := NewEvaluator(nil)

	res := e.Evaluate(c, FromTokens([]string{"tags:science"}), "")

	assert.Equal(t, []string{"Biology", "Chemistry", "Physics", "Earth Science"}, names(res.Records))
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, []string{"tags:science"}, res.Tokens)
	require.Len(t, res.Counts, 4)

	regions := res.Counts[2]
	assert.Equal(t, catalog.FieldRegions, regions.Field.Key)
	got := map[string]int{}
	for _, oc := range regions.Options {
		got[oc.Token] = oc.Count
	}
	assert.Equal(t, map[string]int{"regions:es": 2, "regions:ms": 3, "regions:hs": 3}, got)
}

func TestEvaluate_KeywordNarrowsRowsAndCounts(t *testing.T) {
	c := loadDefault(t)
	res := NewEvaluator(nil).Evaluate(c, nil, "science")

	assert.Equal(t, []string{"Earth Science"}, names(res.Records))
	assert.Empty(t, res.Tokens)
	assert.Equal(t, 1, res.Counts[1].Options[0].Count)
}
