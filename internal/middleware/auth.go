package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/store"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the resolved account.
const CurrentUserKey = "currentUser"

// AuthMiddleware validates the JWT and loads the current user into the
// request context. The token is taken from the Authorization header,
// then the token query parameter (download links cannot set headers),
// then the fdx_token cookie.
func AuthMiddleware(jwtSecret string, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			if cookie, err := c.Cookie("fdx_token"); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, log in again")
			c.Abort()
			return
		}

		user, err := users.Get(claims.UserID)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account no longer exists")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load account")
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
