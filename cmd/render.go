package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/filter"
)

// parseFilterFlags builds the filter state from --filter values. Each value
// may hold several comma separated tokens. Malformed tokens are returned so
// the caller can mention them; the state itself ignores them.
func parseFilterFlags(values []string) (*filter.State, []string) {
	var tokens, malformed []string
	for _, v := range values {
		for _, tok := range strings.Split(v, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, _, ok := filter.ParseToken(tok); !ok {
				malformed = append(malformed, tok)
			}
			tokens = append(tokens, tok)
		}
	}
	return filter.FromTokens(tokens), malformed
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func yesNo(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// tagBadge renders a tag in its configured colour. lipgloss drops the
// colour when w is not a terminal.
func tagBadge(c *catalog.Catalog, tag string) string {
	color := c.TagColor(tag)
	if color == "" {
		return tag
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(tag)
}

// printRecords prints the visible rows as a table followed by "N of M".
func printRecords(w io.Writer, c *catalog.Catalog, res filter.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPUBLIC\tACTIVE\tREGIONS\tTAGS")
	for _, r := range res.Records {
		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, tagBadge(c, t))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Name, yesNo(r.Public), yesNo(r.Active),
			strings.Join(r.Regions, ", "), strings.Join(tags, ", "))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\n%d of %d\n", len(res.Records), res.Total)
}

// printOptionCounts prints every filter option with its checked state and
// its count over the visible rows.
func printOptionCounts(w io.Writer, state *filter.State, res filter.Result) {
	for _, fc := range res.Counts {
		key := string(fc.Field.Key)
		fmt.Fprintf(w, "\n%s (%s):\n", fc.Field.Label, key)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, oc := range fc.Options {
			box := "[ ]"
			if state.Has(key, oc.Option.Value.String()) {
				box = "[x]"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", box, oc.Option.Label, oc.Count, oc.Token)
		}
		_ = tw.Flush()
	}
}
