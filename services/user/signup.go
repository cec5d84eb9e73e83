package user

import (
	"context"
	"fmt"
	"time"

	"bookit/models"
	"bookit/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationCodeLength = 6
	verificationCodeTTL    = 24 * time.Hour
	authTokenTTL           = 7 * 24 * time.Hour
)

// Signup validates the registration data, creates an unverified account,
// emails the verification code, and signs the new user in.
func (s *DefaultUserService) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	code, err := utils.GenerateVerificationCode(verificationCodeLength)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to generate verification code", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:                    uuid.New().String(),
		Name:                  name,
		Email:                 email,
		PasswordHash:          string(hashedPassword),
		IsVerified:            false,
		VerificationCode:      code,
		VerificationExpiresAt: time.Now().Add(verificationCodeTTL),
		LastLogin:             time.Now(),
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Signup: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// One attempt; a delivery failure fails the signup so the user is not
	// stranded without a code.
	if err := s.Email.SendVerificationEmail(ctx, email, code); err != nil {
		utils.GetLogger().Error("Signup: verification email failed", zap.Error(err))
		if delErr := s.Repo.Delete(userObj.ID); delErr != nil {
			utils.GetLogger().Error("Signup: failed to roll back user", zap.Error(delErr))
		}
		return nil, err
	}

	token, err := s.issueToken(ctx, &userObj)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to issue token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:         userObj.ID,
		Token:      token,
		Name:       userObj.Name,
		Email:      userObj.Email,
		IsVerified: false,
	}, nil
}

// VerifyEmail redeems a verification code, marks the account verified, and
// sends the welcome email. Welcome delivery failure is logged, not surfaced.
func (s *DefaultUserService) VerifyEmail(ctx context.Context, code string) (*models.User, error) {
	if code == "" {
		return nil, ErrCodeInvalid
	}

	usr, err := s.Repo.GetByVerificationCode(code)
	if err != nil {
		utils.GetLogger().Error("VerifyEmail: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}
	if usr == nil || time.Now().After(usr.VerificationExpiresAt) {
		return nil, ErrCodeInvalid
	}

	update := bson.M{
		"is_verified":             true,
		"verification_code":       "",
		"verification_expires_at": time.Time{},
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, update); err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to mark verified", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}
	usr.IsVerified = true
	usr.VerificationCode = ""

	if err := s.Email.SendWelcomeEmail(ctx, usr.Email, usr.Name); err != nil {
		utils.GetLogger().Error("VerifyEmail: welcome email failed", zap.Error(err))
	}

	return usr, nil
}
