package jwt

import (
	"net/http"
	"time"
)

// CookieName is the name of the workspace cookie.
const CookieName = "innoevent_ws"

// ReadCookie extracts and validates the workspace cookie. A missing or invalid cookie
// yields an error and the caller treats the browser as new.
func ReadCookie(r *http.Request, secretKey string) (*Payload, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, err
	}
	return ParseToken(cookie.Value, secretKey)
}

// WriteCookie issues a signed workspace cookie for workspaceID.
func WriteCookie(w http.ResponseWriter, workspaceID, secretKey string, secure bool) error {
	token, err := GenerateToken(&Payload{WorkspaceID: workspaceID}, secretKey, WorkspaceCookieExpiration)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(WorkspaceCookieExpiration),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
