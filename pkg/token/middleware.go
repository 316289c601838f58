package token

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

// guardResponse mirrors the historical body of the token guard rejections.
type guardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TokenFromXAccessToken extracts a token from the x-access-token header.
// A leading "Bearer " prefix is accepted there too.
func TokenFromXAccessToken(r *http.Request) string {
	token := r.Header.Get("x-access-token")
	return strings.TrimPrefix(token, "Bearer ")
}

// Verifier decodes a token found in either the Authorization bearer header
// or the x-access-token header and stashes the result in the request
// context. It never rejects a request itself; Authenticator does that.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromXAccessToken)
}

// Authenticator gates protected routes: 401 when no token was supplied,
// 403 when the supplied token fails signature or expiry checks.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, guardResponse{Success: false, Message: "Auth token is not supplied"})
				return
			}
			slog.Debug("Rejected token", "err", err)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, guardResponse{Success: false, Message: "Token is not valid"})
			return
		}

		if tok == nil {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, guardResponse{Success: false, Message: "Token is not valid"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// MemberID returns the member id claim of the authenticated request.
func MemberID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}

	v, ok := claims["memberid"]
	if !ok {
		return 0, errors.New("memberid not found in token claims")
	}

	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		return n.Int64()
	default:
		return 0, errors.New("memberid claim has unexpected type")
	}
}

// Email returns the email claim of the authenticated request.
func Email(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("email not found in token claims")
	}
	return email, nil
}
