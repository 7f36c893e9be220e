package handler

import (
	"bytes"
	"net/http"

	"innoevent/internal/app/calendar"
	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
	"innoevent/internal/pkg/resp"
)

// HandleCalendar re-aggregates the calendar and returns the view with its entries.
func HandleCalendar(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, func(p *portal.Portal) error {
			return p.RefreshCalendar(r.Context())
		})
	}
}

// HandleCalendarICS re-aggregates the calendar and serves it as an iCalendar file.
func HandleCalendarICS(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws := workspaceFrom(r)
		if ws == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		var entries []calendar.Entry
		result, err := ws.Do(func(p *portal.Portal) error {
			if err := p.RefreshCalendar(r.Context()); err != nil {
				return err
			}
			entries = p.CalendarEntries()
			return nil
		})
		if err != nil {
			resp.RespondErrorData(w, r, errs.From(err), result)
			return
		}

		var buf bytes.Buffer
		if err := calendar.WriteICS(&buf, entries); err != nil {
			logx.Error(err, "Failed to encode calendar", "workspace_id", ws.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="innoevent.ics"`)
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
