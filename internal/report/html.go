package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
	"github.com/a-h/templ"
)

// HTML renders rep as a standalone page: a per-kind summary followed by one
// table row per outcome.
func HTML(rep core.Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.print(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.printf(`<title>Seed run %s</title>`, templ.EscapeString(rep.RunID))
		p.print(`</head><body>`)
		p.printf(`<h1>Seed run <code>%s</code></h1>`, templ.EscapeString(rep.RunID))
		p.printf(`<p>Started %s, took %s</p>`,
			templ.EscapeString(rep.StartedAt.UTC().Format(time.RFC3339)),
			templ.EscapeString(rep.Duration.Round(time.Millisecond).String()))

		p.print(`<table class="summary"><thead><tr><th>Kind</th><th>Success</th><th>Failed</th><th>Error</th></tr></thead><tbody>`)
		for _, s := range rep.Summary() {
			p.printf(`<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td></tr>`,
				templ.EscapeString(string(s.Kind)), s.Success, s.Failed, s.Error)
		}
		p.print(`</tbody></table>`)

		p.print(`<table class="outcomes"><thead><tr><th>Kind</th><th>ID</th><th>Status</th><th>Message</th></tr></thead><tbody>`)
		for _, o := range rep.Outcomes {
			p.printf(`<tr class="%s"><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
				statusClass(o.Status),
				templ.EscapeString(string(o.Kind)), o.ID,
				templ.EscapeString(string(o.Status)),
				templ.EscapeString(o.Message))
		}
		p.print(`</tbody></table></body></html>`)

		return p.err
	})
}

// WriteHTMLFile renders rep to path, creating parent directories as needed.
func WriteHTMLFile(ctx context.Context, path string, rep core.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := HTML(rep).Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	return f.Close()
}

func statusClass(s core.Status) string {
	switch s {
	case core.StatusSuccess:
		return "ok"
	case core.StatusFailed:
		return "failed"
	default:
		return "error"
	}
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
