package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohit-bt/ayurveda-website/config"
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// LoginRequest is the body of POST /api/auth/login. The catalog has a single
// admin account, so only the password is presented.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// VerifyResponse reports token validity.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// LoginHandler checks the admin password and issues a session token.
// @Summary      Admin Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Admin password"
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/auth/login [post]
func LoginHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, "Invalid request body")
		return
	}

	if err := catalog.CheckAdminPassword(req.Password); err != nil {
		if errors.Is(err, store.ErrWrongPassword) {
			utils.GinUnauthorized(c, "Invalid password")
		} else {
			utils.GinInternalServerError(c, "Failed to login")
		}
		return
	}

	token, err := utils.GenerateJWT(cfg)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// VerifyHandler reports that the presented token is valid. The auth
// middleware has already done the checking by the time this runs; an invalid
// token never reaches here.
// @Summary      Verify Token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  VerifyResponse
// @Failure      401  {object}  utils.APIError
// @Router       /api/auth/verify [get]
func VerifyHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	c.JSON(http.StatusOK, VerifyResponse{Valid: true})
}

// LogoutHandler revokes the presented session token. Logout is best-effort:
// the response is 200 whether or not a valid token was presented, since the
// client discards its copy regardless.
// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /api/auth/logout [post]
func LogoutHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		if claims, err := utils.ValidateJWT(parts[1], cfg); err == nil {
			expiry := time.Now().Add(cfg.TokenLifetime)
			if claims.ExpiresAt != nil {
				expiry = claims.ExpiresAt.Time
			}
			catalog.RevokeToken(claims.ID, expiry)
		}
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// ChangePasswordHandler rotates the admin password. The new password must be
// at least 8 characters and match its confirmation; the current password must
// verify. On success the presented token is revoked and older tokens stop
// validating, so the admin has to log in again.
// @Summary      Change Admin Password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords body ChangePasswordRequest true "Current and new passwords"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/auth/change-password [post]
func ChangePasswordHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, "Invalid request body")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		utils.GinBadRequest(c, "New passwords do not match")
		return
	}
	if len(req.NewPassword) < 8 {
		utils.GinBadRequest(c, "Password must be at least 8 characters long")
		return
	}

	if err := catalog.UpdateAdminPassword(req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, store.ErrWrongPassword) {
			utils.GinUnauthorized(c, "Current password is incorrect")
		} else {
			utils.GinInternalServerError(c, "Failed to change password")
		}
		return
	}

	// Revoke the session that made the change; the timestamp check in the
	// middleware covers any other outstanding tokens.
	tokenID := c.GetString("tokenID")
	expiry := time.Now().Add(cfg.TokenLifetime)
	if v, ok := c.Get("tokenExpiry"); ok {
		if t, ok := v.(time.Time); ok {
			expiry = t
		}
	}
	catalog.RevokeToken(tokenID, expiry)

	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}
