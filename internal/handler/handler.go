package handler

import (
	"net/http"

	"github.com/MateusDuran/FinancasDX/internal/middleware"
	"github.com/MateusDuran/FinancasDX/internal/models"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the account loaded by AuthMiddleware out of the
// context. On failure it writes the 401 itself and returns nil.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil
	}
	return user
}
