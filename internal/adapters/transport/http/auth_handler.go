package http

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/dto"
	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/middleware"
	authsvc "github.com/yatradesk/yatradesk-backend/internal/app/auth/service"
	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
)

type AuthHandler struct {
	svc authsvc.Service
	log *zap.Logger
}

func NewAuthHandler(svc authsvc.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// hashEmail keys log lines by account without writing the address itself.
func hashEmail(email string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(email)))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body dto.RegisterRequest
	if !bindAndValidate(c, &body) {
		return
	}
	h.log.Info("/auth/register", zap.String("user", hashEmail(body.Email)))

	sess, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    sess.User,
		"token":   sess.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body dto.LoginRequest
	if !bindAndValidate(c, &body) {
		return
	}
	h.log.Info("/auth/login", zap.String("user", hashEmail(body.Email)))

	sess, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    sess.User,
		"token":   sess.Token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if customErrors.IsNotFound(err) {
			Fail(c, http.StatusNotFound, "User not found")
			return
		}
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body dto.UpdateProfileRequest
	if !bindAndValidate(c, &body) {
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), uid, body)
	if err != nil {
		if customErrors.IsNotFound(err) {
			Fail(c, http.StatusNotFound, "User not found")
			return
		}
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"user":    profile,
	})
}
