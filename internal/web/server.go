// Package web serves the catalog page to a browser. Every request carries
// its whole filter state in the query string (one f=field:value per
// token), so handlers share nothing but the read-only catalog.
package web

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/filter"
	"go.uber.org/zap"
)

//go:embed page.html
var pageHTML string

const shutdownTimeout = 5 * time.Second

// Server renders the catalog page.
type Server struct {
	cat  *catalog.Catalog
	eval *filter.Evaluator
	log  *zap.Logger
	page *template.Template
}

// NewServer returns a Server for cat. A nil logger discards diagnostics.
func NewServer(cat *catalog.Catalog, eval *filter.Evaluator, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	page, err := template.New("page").Parse(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("cannot parse page template: %w", err)
	}
	return &Server{cat: cat, eval: eval, log: log, page: page}, nil
}

// Handler returns the HTTP handler of the page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

type optionView struct {
	Label     string
	Token     string
	Checked   bool
	Count     int
	Color     string
	ToggleURL string
}

type fieldView struct {
	Label    string
	Options  []optionView
	ClearURL string
}

type selectOption struct {
	Label    string
	Token    string
	Selected bool
}

type tagView struct {
	Name  string
	Color string
}

type rowView struct {
	Name    string
	Public  bool
	Active  bool
	Regions string
	Tags    []tagView
}

type pageData struct {
	Fields        []fieldView
	SelectOptions []selectOption
	Rows          []rowView
	Query         string
	Shown         int
	Total         int
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	state := filter.FromTokens(q["f"])
	query := strings.TrimSpace(q.Get("q"))

	// clear=<field> is a one-shot action; redirect so the URL holds the state.
	if field := q.Get("clear"); field != "" {
		state.ClearField(field)
		http.Redirect(w, r, pageURL(state, query), http.StatusSeeOther)
		return
	}

	res := s.eval.Evaluate(s.cat, state, query)
	data := s.buildPage(state, query, res)

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.log.Error("cannot render page", zap.Error(err))
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	s.log.Debug("rendered page",
		zap.Strings("tokens", res.Tokens),
		zap.String("query", query),
		zap.Int("shown", len(res.Records)),
		zap.Int("total", res.Total))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) buildPage(state *filter.State, query string, res filter.Result) pageData {
	data := pageData{Query: query, Shown: len(res.Records), Total: res.Total}

	for _, fc := range res.Counts {
		key := string(fc.Field.Key)
		cleared := state.Clone()
		cleared.ClearField(key)

		fv := fieldView{Label: fc.Field.Label, ClearURL: pageURL(cleared, query)}
		for _, oc := range fc.Options {
			v := oc.Option.Value.String()
			checked := state.Has(key, v)
			// A checkbox click changes only its own token; every other token,
			// options or not, keeps its position.
			toggled := state.Clone()
			toggled.Toggle(key, v)
			ov := optionView{
				Label:     oc.Option.Label,
				Token:     oc.Token,
				Checked:   checked,
				Count:     oc.Count,
				ToggleURL: pageURL(toggled, query),
			}
			if fc.Field.Key == catalog.FieldTags {
				ov.Color = s.cat.TagColor(v)
			}
			fv.Options = append(fv.Options, ov)
			data.SelectOptions = append(data.SelectOptions, selectOption{
				Label:    fc.Field.Label + ": " + oc.Option.Label,
				Token:    oc.Token,
				Selected: checked,
			})
		}
		data.Fields = append(data.Fields, fv)
	}

	for _, rec := range res.Records {
		row := rowView{
			Name:    rec.Name,
			Public:  rec.Public,
			Active:  rec.Active,
			Regions: strings.Join(rec.Regions, ", "),
		}
		for _, tag := range rec.Tags {
			row.Tags = append(row.Tags, tagView{Name: tag, Color: s.cat.TagColor(tag)})
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// pageURL returns the page URL that encodes state and query.
func pageURL(state *filter.State, query string) string {
	v := url.Values{}
	for _, tok := range state.Tokens() {
		v.Add("f", tok)
	}
	if query != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// Serve serves h on ln until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info("serving catalog page", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("cannot serve on %s: %w", ln.Addr(), err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("cannot shut down server: %w", err)
		}
		<-errCh
		return nil
	}
}

// ListenAndServe listens on addr and calls Serve.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", addr, err)
	}
	return Serve(ctx, ln, h, log)
}
