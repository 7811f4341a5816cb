package middleware

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/session"
)

const UserUIDKey = "user_uid"

// SnapshotSource exposes the current session snapshot to the guard.
type SnapshotSource interface {
	Snapshot() session.Snapshot
}

// Guard protects a route behind the session state machine. While the
// session is still resolving it answers with a loading status rather
// than redirecting, so a slow profile lookup never bounces a valid
// session. Unauthenticated requests, and non-admin requests on admin
// routes, are redirected home.
func Guard(sessions SnapshotSource, requireAdmin bool) drift.HandlerFunc {
	return func(c *drift.Context) {
		snap := sessions.Snapshot()

		if snap.State == session.StateResolving {
			c.JSON(http.StatusOK, map[string]string{"status": "loading"})
			return
		}

		if snap.State != session.StateAuthenticated || (requireAdmin && !snap.IsAdmin) {
			http.Redirect(c.Response, c.Request, "/", http.StatusSeeOther)
			return
		}

		c.Set(UserUIDKey, snap.User.UID)
		c.Next()
	}
}

func GetUserUID(c *drift.Context) string {
	if v, ok := c.Get(UserUIDKey); ok {
		if uid, ok := v.(string); ok {
			return uid
		}
	}
	return ""
}
