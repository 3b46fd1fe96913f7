package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/models"
	"github.com/MateusDuran/FinancasDX/internal/store"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Users     *store.UserStore
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(users *store.UserStore, jwtSecret, issuer string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Users:     users,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type registerReq struct {
	NationalID string `json:"national_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=64"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid email")
		return
	}
	if err := util.ValidateNationalID(req.NationalID); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "national id must be 11 digits")
		return
	}
	if len(req.Password) < 4 || len(req.Password) > 64 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be 4-64 characters")
		return
	}

	if exists, err := h.Users.ExistsByEmail(req.Email); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check email")
		return
	} else if exists {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email already registered")
		return
	}
	if exists, err := h.Users.ExistsByNationalID(req.NationalID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check national id")
		return
	} else if exists {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "national id already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		NationalID:   req.NationalID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		RegisteredAt: time.Now(),
	}
	if err := h.Users.Create(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create account")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load account")
		}
		return
	}

	now := time.Now()

	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account locked, try again later")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		// 5 consecutive failures lock the account for 10 minutes.
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			lockUntil := now.Add(10 * time.Minute)
			user.LockedUntil = &lockUntil
			user.FailedLoginAttempts = 0
		}
		_ = h.Users.Update(user)
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		return
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginIP = c.ClientIP()
	user.LastLoginAt = &now
	_ = h.Users.Update(user)

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.Email, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

type validatePasswordReq struct {
	Password string `json:"password" binding:"required"`
}

// ValidatePassword re-checks the caller's password, used before
// sensitive operations like account deletion.
func (h *AuthHandler) ValidatePassword(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req validatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Success(c, util.Response{"valid": false})
		return
	}
	util.Success(c, util.Response{"valid": true})
}
