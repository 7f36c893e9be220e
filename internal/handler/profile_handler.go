package handler

import (
	"net/http"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/resp"
)

// HandleGetProfile loads the profile form.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, func(p *portal.Portal) error {
			return p.LoadProfile(r.Context())
		})
	}
}

// HandleUpdateProfile submits the non-blank profile fields.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input forms.ProfileForm
		if customErr := bind(w, r, &input, func(get func(string) string) {
			input = forms.ProfileForm{
				Surname:  get("surname"),
				Name:     get("name"),
				Phone:    get("phone"),
				Email:    get("email"),
				Password: get("password"),
			}
		}); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.UpdateProfile(r.Context(), input)
		})
	}
}
