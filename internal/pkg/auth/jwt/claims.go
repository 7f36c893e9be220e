package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set stored in the portal's workspace cookie.
// It only binds a browser to its server-side workspace; the user's identity lives in the
// workspace's session and is never trusted from the cookie.
type Payload struct {
	jwt.StandardClaims `json:"standard_claims"`

	// WorkspaceID identifies the browser's workspace in the registry.
	WorkspaceID string `json:"wid"`
}
