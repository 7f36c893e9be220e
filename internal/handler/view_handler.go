package handler

import (
	"net/http"

	"innoevent/internal/app/portal"
	"innoevent/internal/app/view"
	"innoevent/internal/pkg/resp"
)

// HandleView returns the current view without changing it.
func HandleView(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, func(*portal.Portal) error { return nil })
	}
}

// NavigateInput names the target page, or a profile tab.
type NavigateInput struct {
	Page string `json:"page"`
	Tab  string `json:"tab,omitempty"`
}

// HandleNavigate switches to a page, or to a profile tab when tab is set.
func HandleNavigate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input NavigateInput
		if customErr := bind(w, r, &input, func(get func(string) string) {
			input.Page = get("page")
			input.Tab = get("tab")
		}); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Tab != "" {
			tab, err := view.ParseTab(input.Tab)
			if err != nil {
				run(w, r, func(*portal.Portal) error { return err })
				return
			}
			run(w, r, func(p *portal.Portal) error { return p.ShowProfileTab(r.Context(), tab) })
			return
		}

		page, err := view.ParsePage(input.Page)
		if err != nil {
			run(w, r, func(*portal.Portal) error { return err })
			return
		}
		run(w, r, func(p *portal.Portal) error { return p.Navigate(r.Context(), page) })
	}
}
