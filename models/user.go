package models

import "time"

// User represents a platform account.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	IsVerified   bool   `bson:"is_verified" json:"isVerified"`

	// Email verification code, present only while verification is pending.
	VerificationCode      string    `bson:"verification_code,omitempty" json:"-"`
	VerificationExpiresAt time.Time `bson:"verification_expires_at,omitempty" json:"-"`

	// Password reset token, present only while a reset is pending.
	ResetPasswordToken     string    `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpiresAt time.Time `bson:"reset_password_expires_at,omitempty" json:"-"`

	// SHA-256 hash of the currently issued auth token, empty when signed out.
	TokenHash string `bson:"token_hash,omitempty" json:"-"`

	LastLogin time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
