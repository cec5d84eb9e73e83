package user

import (
	"context"
	"fmt"
	"time"

	"bookit/config"
	"bookit/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// ForgotPassword issues a reset token and emails the reset link. The caller
// always sees success when no account matches the email, to avoid account
// enumeration.
func (s *DefaultUserService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ForgotPassword: lookup failed", zap.Error(err))
		return fmt.Errorf("request failed, please try again")
	}
	if usr == nil {
		utils.GetLogger().Debug("ForgotPassword: no account for email", zap.String("email", email))
		return nil
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to generate token", zap.Error(err))
		return fmt.Errorf("request failed, please try again")
	}

	update := bson.M{
		"reset_password_token":      token,
		"reset_password_expires_at": time.Now().Add(resetTokenTTL),
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, update); err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to store token", zap.Error(err))
		return fmt.Errorf("request failed, please try again")
	}

	resetURL := config.AppConfig.ClientURL + "/reset-password/" + token
	if err := s.Email.SendPasswordResetEmail(ctx, usr.Email, resetURL); err != nil {
		utils.GetLogger().Error("ForgotPassword: reset email failed", zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword redeems a reset token, replaces the password, and signs the
// user out everywhere. Reset-success delivery failure is logged, not
// surfaced.
func (s *DefaultUserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	usr, err := s.Repo.GetByResetToken(token)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: lookup failed", zap.Error(err))
		return fmt.Errorf("reset failed, please try again")
	}
	if usr == nil || time.Now().After(usr.ResetPasswordExpiresAt) {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("reset failed, please try again")
	}

	update := bson.M{
		"password_hash":             string(hashedPassword),
		"reset_password_token":      "",
		"reset_password_expires_at": time.Time{},
		"token_hash":                "",
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, update); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update password", zap.Error(err))
		return fmt.Errorf("reset failed, please try again")
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+usr.ID).Err(); err != nil {
		utils.GetLogger().Warn("ResetPassword: failed to drop auth cache entry", zap.Error(err))
	}

	if err := s.Email.SendResetSuccessEmail(ctx, usr.Email); err != nil {
		utils.GetLogger().Error("ResetPassword: success email failed", zap.Error(err))
	}
	return nil
}
