package internal

import (
	"chat-shell/observability"
	"chat-shell/repositories"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Inspector lists raw directory records.
type Inspector interface {
	Inspect(prefix string) ([]repositories.Entry, error)
}

type InspectRow struct {
	Key        string
	Collection string
	Position   string
	EntityID   string
	Detail     string
}

type RowMapper func(entry repositories.Entry) InspectRow

type InspectPage struct {
	Prefix string
	Items  []InspectRow
	Stats  observability.Stats
}

// DefaultMapper splits "{collection}:{position}:{id}" keys. Other keys are shown as is.
func DefaultMapper(entry repositories.Entry) InspectRow {
	row := InspectRow{
		Key:        entry.Key,
		Collection: entry.Key,
		Position:   "-",
		EntityID:   "-",
		Detail:     "Size: " + strconv.Itoa(len(entry.Value)) + " bytes",
	}
	if parts := strings.SplitN(entry.Key, ":", 3); len(parts) == 3 {
		row.Collection = parts[0]
		row.Position = parts[1]
		row.EntityID = parts[2]
	}
	return row
}

// handleInspect lists the directory under ?prefix= (everything by default).
func (s *WebServer) handleInspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	entries, err := s.inspector.Inspect(prefix)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := InspectPage{
		Prefix: prefix,
		Items:  lo.Map(entries, func(e repositories.Entry, _ int) InspectRow { return DefaultMapper(e) }),
		Stats:  s.monitoring.Snapshot(s.svc.Sessions()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = s.tmpl.ExecuteTemplate(w, "inspect", data); err != nil {
		s.log.Error("Template rendering failed", "err", err, "path", r.URL.Path)
	}
}
