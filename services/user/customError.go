package user

import "errors"

// ErrEmailTaken signals a signup attempt with an already registered email.
var ErrEmailTaken = errors.New("a user with this email already exists")

// ErrInvalidCredentials signals a failed email/password check. The message
// is deliberately the same for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrCodeInvalid signals an unknown or expired email verification code.
var ErrCodeInvalid = errors.New("invalid or expired verification code")

// ErrResetTokenInvalid signals an unknown or expired password reset token.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")
