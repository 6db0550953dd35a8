package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/qoozee/qoozee/internal/session"
)

const (
	sessionCookie = "qz_session"
	sessionKey    = "session"
)

// withSession loads the shopper's session from the cookie, creating a blank
// one when missing or expired, and saves it back after the handler ran.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
			sess, _ = s.sessions.Get(c.Request.Context(), id)
		}
		if sess == nil {
			sess = session.New()
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
			log.Debug().Str("session_id", sess.ID).Msg("started new session")
		}
		c.Set(sessionKey, sess)

		c.Next()

		if err := s.sessions.Put(c.Request.Context(), sess); err != nil {
			log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to save session")
		}
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
