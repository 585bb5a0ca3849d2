package utils

import (
	rndm "math/rand"
	"net/http"

	"liana/globals"
)

// --- Random String Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var base36Runes = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateBase36String creates a random uppercase base36 string of length n.
func GenerateBase36String(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = base36Runes[rndm.Intn(len(base36Runes))]
	}
	return string(b)
}

// --- Session Helpers ---

func GetSessionIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	sessionID, ok := ctx.Value(globals.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return ""
	}
	return sessionID
}
