package handlers

import (
	"errors"
	"net/http"

	"bookit/config"
	"bookit/models"
	"bookit/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService injects the user service used by the auth handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

const authCookieMaxAge = 7 * 24 * 60 * 60

// setAuthCookie attaches the auth token as an HTTP-only cookie.
func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, authCookieMaxAge, "/", "", config.IsProduction(), true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.IsProduction(), true)
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler registers a new account and emails the verification code.
func SignupHandler(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setAuthCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyEmailHandler redeems the emailed verification code.
func VerifyEmailHandler(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := userService.VerifyEmail(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, user.ErrCodeInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Email verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully", "user": usr})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates by email and password.
func LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setAuthCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's token and clears the auth cookie.
func LogoutHandler(c *gin.Context) {
	if userID, exists := c.Get("userID"); exists {
		if err := userService.Logout(c.Request.Context(), userID.(string)); err != nil {
			getLogger(c).Warn("Logout failed", zap.Error(err))
		}
	}
	clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CheckAuthHandler reports the caller's session state. It never fails; a
// rejected token simply yields an unauthenticated session.
func CheckAuthHandler(c *gin.Context) {
	session, exists := c.Get("session")
	if !exists {
		c.JSON(http.StatusOK, models.Unauthenticated())
		return
	}
	c.JSON(http.StatusOK, session)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordHandler emails a password reset link.
func ForgotPasswordHandler(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := userService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		getLogger(c).Error("Forgot password failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link has been sent"})
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ResetPasswordHandler redeems a reset token from the URL and sets the new
// password.
func ResetPasswordHandler(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := c.Param("token")
	if err := userService.ResetPassword(c.Request.Context(), token, req.Password); err != nil {
		if errors.Is(err, user.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Password reset failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been successfully reset. Please sign in with your new password."})
}
