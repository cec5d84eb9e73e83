package user

import (
	"context"

	userRepo "bookit/database/repository/user"
	"bookit/models"
	"bookit/services/notification"
)

// UserService covers the account lifecycle: registration with email
// verification, authentication, and password recovery.
type UserService interface {
	// Signup creates an unverified account, emails a verification code, and
	// signs the new user in.
	Signup(ctx context.Context, name, email, password string) (*AuthResponse, error)
	// VerifyEmail redeems a pending verification code and sends the welcome
	// email.
	VerifyEmail(ctx context.Context, code string) (*models.User, error)
	// Login authenticates by email and password and issues a fresh token.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// Logout revokes the user's current token.
	Logout(ctx context.Context, userID string) error
	// CheckAuth resolves a bearer token to the caller's session. It never
	// fails: any error leaves the session unauthenticated.
	CheckAuth(ctx context.Context, token string) *models.Session
	// ForgotPassword issues a reset token and emails the reset link. It
	// reports success even when no account matches, to avoid account
	// enumeration.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword redeems a reset token and replaces the password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Email notification.EmailService
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	ID         string `json:"id"`
	Token      string `json:"token"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}
