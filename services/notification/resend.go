package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookit/config"
	"bookit/utils"

	"go.uber.org/zap"
)

const resendBaseURL = "https://api.resend.com"

// ResendEmailService sends transactional email through the Resend API.
type ResendEmailService struct {
	APIKey  string
	Sender  string // "Name <email>" form expected by the provider.
	BaseURL string
	Client  *http.Client
}

// NewResendEmailService builds the production email service from AppConfig.
func NewResendEmailService() *ResendEmailService {
	return &ResendEmailService{
		APIKey:  config.AppConfig.ResendAPIKey,
		Sender:  fmt.Sprintf("%s <%s>", config.AppConfig.SenderName, config.AppConfig.SenderEmail),
		BaseURL: resendBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type resendMessage struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html"`
	Tags    []resendTag `json:"tags,omitempty"`
}

// send submits one message to the provider. One attempt, no retry.
func (s *ResendEmailService) send(ctx context.Context, msg resendMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var provider struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &provider) == nil && provider.Message != "" {
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, provider.Message)
		}
		return fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	utils.GetLogger().Info("Email sent successfully",
		zap.String("to", msg.To[0]),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// SendVerificationEmail emails the 6-digit verification code.
func (s *ResendEmailService) SendVerificationEmail(ctx context.Context, email, verificationCode string) error {
	msg := resendMessage{
		From:    s.Sender,
		To:      []string{email},
		Subject: "Verify your email",
		HTML:    strings.Replace(verificationEmailTemplate, "{verificationCode}", verificationCode, 1),
		Tags:    []resendTag{{Name: "category", Value: "email_verification"}},
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("error sending verification email: %w", err)
	}
	return nil
}

// SendWelcomeEmail emails the post-verification welcome note.
func (s *ResendEmailService) SendWelcomeEmail(ctx context.Context, email, name string) error {
	msg := resendMessage{
		From:    s.Sender,
		To:      []string{email},
		Subject: "Welcome to BookIt!",
		HTML:    strings.Replace(welcomeTemplate, "{name}", name, 1),
		Tags:    []resendTag{{Name: "category", Value: "welcome_email"}},
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("error sending welcome email: %w", err)
	}
	return nil
}

// SendPasswordResetEmail emails the reset link.
func (s *ResendEmailService) SendPasswordResetEmail(ctx context.Context, email, resetURL string) error {
	msg := resendMessage{
		From:    s.Sender,
		To:      []string{email},
		Subject: "Reset your password",
		HTML:    strings.Replace(passwordResetRequestTemplate, "{resetURL}", resetURL, 1),
		Tags:    []resendTag{{Name: "category", Value: "password_reset"}},
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("error sending password reset email: %w", err)
	}
	return nil
}

// SendResetSuccessEmail emails the reset confirmation.
func (s *ResendEmailService) SendResetSuccessEmail(ctx context.Context, email string) error {
	msg := resendMessage{
		From:    s.Sender,
		To:      []string{email},
		Subject: "Password Reset Successful",
		HTML:    passwordResetSuccessTemplate,
		Tags:    []resendTag{{Name: "category", Value: "password_reset"}},
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("error sending password reset success email: %w", err)
	}
	return nil
}
