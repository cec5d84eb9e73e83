package notification

import "context"

// EmailService defines the transactional emails the platform sends. Each
// method performs exactly one delivery attempt; failures are wrapped with an
// operation-specific message and returned to the caller. There is no retry.
type EmailService interface {
	SendVerificationEmail(ctx context.Context, email, verificationCode string) error
	SendWelcomeEmail(ctx context.Context, email, name string) error
	SendPasswordResetEmail(ctx context.Context, email, resetURL string) error
	SendResetSuccessEmail(ctx context.Context, email string) error
}
