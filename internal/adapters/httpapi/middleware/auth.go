package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"yatube/internal/config"
	userPort "yatube/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const (
	UserIDKey   = "userID"
	UsernameKey = "username"
	TokenCookie = "token"
	LoginURL    = "/auth/login/"
)

// TokenParser turns a session token into the actor it was issued to.
type TokenParser interface {
	ParseToken(raw string) (*userPort.Claims, error)
}

// JWTAuthMiddleware identifies the actor from the token cookie or a Bearer
// header. Requests without a valid token continue as anonymous.
func JWTAuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := tokenFromRequest(c); raw != "" {
			claims, err := parser.ParseToken(raw)
			if err != nil {
				config.Logger.Debug("Ignoring invalid session token", zap.Error(err))
			} else {
				c.Set(UserIDKey, claims.UserID)
				c.Set(UsernameKey, claims.Username)
			}
		}
		c.Next()
	}
}

// LoginRequired sends anonymous actors to the login page, remembering where they were going.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ActorID(c); !ok {
			c.Redirect(http.StatusFound, LoginRedirectURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirectURL builds /auth/login/?next=<next>, leaving slashes readable.
func LoginRedirectURL(next string) string {
	return LoginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// ActorID returns the authenticated actor, if any.
func ActorID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.FromString(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func ActorUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
