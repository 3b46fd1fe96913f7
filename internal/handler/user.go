package handler

import (
	"net/http"

	"github.com/MateusDuran/FinancasDX/internal/store"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GetMe returns the current account's profile. The password hash is
// never included.
func GetMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":            user.ID,
			"national_id":   user.NationalID,
			"name":          user.Name,
			"email":         user.Email,
			"registered_at": user.RegisteredAt,
		},
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=4,max=64"`
}

// ChangePassword replaces the caller's credential after re-checking
// the old one.
func ChangePassword(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			return
		}

		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "old password does not match")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
			return
		}

		user.PasswordHash = string(hash)
		if err := users.Update(user); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save password")
			return
		}

		util.Success(c, util.Response{"message": "password changed"})
	}
}

// DeleteAccount removes the caller's account together with every
// transaction it owns.
func DeleteAccount(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			return
		}

		if err := users.Delete(user.ID); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete account")
			return
		}

		util.Success(c, util.Response{"message": "account deleted"})
	}
}
