package user

import (
	"context"
	"fmt"
	"time"

	"bookit/models"
	"bookit/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates by email and password and issues a fresh token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Login: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, usr)
	if err != nil {
		utils.GetLogger().Error("Login: failed to issue token", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	return &AuthResponse{
		ID:         usr.ID,
		Token:      token,
		Name:       usr.Name,
		Email:      usr.Email,
		IsVerified: usr.IsVerified,
	}, nil
}

// Logout revokes the user's current token and drops the auth cache entry.
func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Logout: failed to drop auth cache entry", zap.Error(err))
	}
	return nil
}

// issueToken mints a JWT for the user, stores its hash on the record, and
// primes the auth cache.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, authTokenTTL)
	if err != nil {
		return "", err
	}
	tokenHash := utils.HashToken(token)

	update := bson.M{
		"token_hash": tokenHash,
		"last_login": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, update); err != nil {
		return "", err
	}

	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+usr.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}
	return token, nil
}

// CheckAuth resolves a bearer token to the caller's session. Any failure
// (missing token, bad signature, revoked token, store error) resolves to an
// unauthenticated session; nothing is surfaced to the caller.
func (s *DefaultUserService) CheckAuth(ctx context.Context, token string) *models.Session {
	logger := utils.GetLogger()
	if token == "" {
		return models.Unauthenticated()
	}

	userID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		logger.Debug("CheckAuth: token rejected", zap.Error(err))
		return models.Unauthenticated()
	}
	computedHash := utils.HashToken(token)

	// Cache hit short-circuits the revocation lookup; a mismatch means the
	// token was superseded or revoked.
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	cacheHit := err == nil
	if cacheHit && cachedHash != computedHash {
		return models.Unauthenticated()
	}
	if err != nil && err != redis.Nil {
		logger.Warn("CheckAuth: auth cache unavailable, falling back to DB", zap.Error(err))
	}

	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		logger.Debug("CheckAuth: user lookup failed", zap.Error(err))
		return models.Unauthenticated()
	}

	if !cacheHit {
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			return models.Unauthenticated()
		}
		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			logger.Warn("CheckAuth: failed to prime auth cache", zap.Error(err))
		}
	} else {
		_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
	}

	return &models.Session{
		IsAuthenticated: true,
		UserID:          usr.ID,
		User: &models.SessionUser{
			Name:       usr.Name,
			Email:      usr.Email,
			IsVerified: usr.IsVerified,
		},
	}
}
