/*
Package handler provides HTTP handler functions for browsing, creating, editing and deleting events
and for registering and cancelling attendance.
*/
package handler

import (
	"net/http"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/resp"
)

func bindEventForm(w http.ResponseWriter, r *http.Request) (forms.EventForm, *errs.CustomError) {
	var input forms.EventForm
	customErr := bind(w, r, &input, func(get func(string) string) {
		input = forms.EventForm{
			Title:       get("title"),
			Description: get("description"),
			EventType:   get("eventType"),
			Date:        get("date"),
			Location:    get("location"),
			TotalSeats:  forms.Numeric(get("totalSeats")),
		}
	})
	return input, customErr
}

// HandleListEvents refreshes the event list, optionally filtered by ?type=.
func HandleListEvents(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("type")
		run(w, r, func(p *portal.Portal) error {
			return p.RefreshEvents(r.Context(), filter)
		})
	}
}

// HandleCreateEvent submits the create-event form.
func HandleCreateEvent(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, customErr := bindEventForm(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.CreateEvent(r.Context(), input)
		})
	}
}

// HandleRegisterForEvent registers the user for the event in the path.
func HandleRegisterForEvent(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := pathID(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.RegisterForEvent(r.Context(), id)
		})
	}
}

// HandleBeginEdit opens the event in the path in the edit form.
func HandleBeginEdit(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := pathID(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.BeginEdit(r.Context(), id)
		})
	}
}

// HandleSaveEdit submits the edit form for the event being edited.
func HandleSaveEdit(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, customErr := bindEventForm(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.SaveEdit(r.Context(), input)
		})
	}
}

// HandleCancelEdit abandons the edit form.
func HandleCancelEdit(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, func(p *portal.Portal) error {
			return p.CancelEdit(r.Context())
		})
	}
}

// HandleDeleteEvent deletes the event in the path when ?confirm=true.
func HandleDeleteEvent(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := pathID(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.DeleteEvent(r.Context(), id, confirmed(r))
		})
	}
}

// HandleCancelRegistration cancels the registration in the path when ?confirm=true.
func HandleCancelRegistration(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := pathID(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.CancelRegistration(r.Context(), id, confirmed(r))
		})
	}
}
