/*
Package handler provides HTTP handler functions for signing up, signing in and signing out.
*/
package handler

import (
	"net/http"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/resp"
)

// HandleRegister submits the sign-up form.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input forms.RegistrationForm
		if customErr := bind(w, r, &input, func(get func(string) string) {
			input = forms.RegistrationForm{
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
			return p.SubmitRegistration(r.Context(), input)
		})
	}
}

// HandleLogin submits the sign-in form.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input forms.LoginForm
		if customErr := bind(w, r, &input, func(get func(string) string) {
			input = forms.LoginForm{Email: get("email"), Password: get("password")}
		}); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		run(w, r, func(p *portal.Portal) error {
			return p.SubmitLogin(r.Context(), input)
		})
	}
}

// HandleLogout signs out and shows the login page.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, func(p *portal.Portal) error {
			return p.Logout(r.Context())
		})
	}
}
