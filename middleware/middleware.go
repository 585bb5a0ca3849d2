package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"liana/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Claims correlate a browser session with its cart. There is no user
// identity; the token only names the session.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// IssueSessionToken mints a signed token for a fresh session id.
func IssueSessionToken() (token string, sessionID string, err error) {
	sessionID = uuid.NewString()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.SessionSecret)
	return token, sessionID, err
}

// EnsureSession resolves the caller's session, minting one when the token
// is absent or invalid. A freshly minted token is returned in the
// X-Session-Token response header so the client can hold on to it.
func EnsureSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if len(tokenString) >= 8 && tokenString[:7] == "Bearer " {
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
				return globals.SessionSecret, nil
			})
			if err == nil && token.Valid && claims.SessionID != "" {
				ctx := context.WithValue(r.Context(), globals.SessionIDKey, claims.SessionID)
				next(w, r.WithContext(ctx), ps)
				return
			}
		}

		token, sessionID, err := IssueSessionToken()
		if err != nil {
			http.Error(w, "Failed to start session", http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Session-Token", token)
		ctx := context.WithValue(r.Context(), globals.SessionIDKey, sessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// ValidateSessionToken parses a raw "Bearer ..." header value.
func ValidateSessionToken(tokenString string) (*Claims, error) {
	if tokenString == "" || len(tokenString) < 8 {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.SessionSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session")
	}
	return claims, nil
}
