package globals

import (
	"context"
	"os"
)

var (
	// SessionSecret signs guest session tokens. Override with SESSION_SECRET.
	SessionSecret = []byte("liana-session-secret")
)

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

var Ctx = context.Background()

func init() {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		SessionSecret = []byte(s)
	}
}
