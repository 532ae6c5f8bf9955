// Package web holds the embedded page templates and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/dustin/go-humanize"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/filterbar"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the files under static/ at the root of the returned FS.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes into a buffer first so a failing template never leaves a
// half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var statusClasses = map[entity.LeadStatus]string{
	entity.StatusInProgress:          "badge-blue",
	entity.StatusNeedsReview:         "badge-orange",
	entity.StatusFirstTouchScheduled: "badge-purple",
	entity.StatusMeetingBooked:       "badge-green",
	entity.StatusNoResponse:          "badge-gray",
	entity.StatusOptedOut:            "badge-red",
	entity.StatusError:               "badge-red",
}

var channelIcons = map[entity.Channel]string{
	entity.ChannelEmail:    "✉",
	entity.ChannelPhone:    "☎",
	entity.ChannelLinkedIn: "in",
}

var outreachIcons = map[entity.OutreachStatus]string{
	entity.OutreachSent:      "✓",
	entity.OutreachQueued:    "◷",
	entity.OutreachScheduled: "▦",
	entity.OutreachError:     "⚠",
	entity.OutreachPaused:    "⏸",
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"comma": func(n int) string { return humanize.Comma(int64(n)) },
		"statusClass": func(s entity.LeadStatus) string {
			if c, ok := statusClasses[s]; ok {
				return c
			}
			return "badge-gray"
		},
		"channelIcon": func(c entity.Channel) string {
			if icon, ok := channelIcons[c]; ok {
				return icon
			}
			return channelIcons[entity.ChannelEmail]
		},
		"outreachIcon": func(s entity.OutreachStatus) string {
			if icon, ok := outreachIcons[s]; ok {
				return icon
			}
			return outreachIcons[entity.OutreachQueued]
		},
		"humanize": filterbar.Humanize,
		"sortMark": func(active leadtable.SortField, dir leadtable.Direction, column string) string {
			if string(active) != column {
				return ""
			}
			if dir == leadtable.Descending {
				return "▼"
			}
			return "▲"
		},
		"isLast": func(i, n int) bool { return i == n-1 },
		"dict":   dict,
	}
}

// dict lets a template pass several named values to a nested template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
