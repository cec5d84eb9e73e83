package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"bookit/models"
	"bookit/utils"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("failed to fetch user with id %s", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) findBy(match func(*models.User) bool) (*models.User, error) {
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) GetByVerificationCode(code string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool { return u.VerificationCode == code && code != "" })
}

func (r *fakeUserRepo) GetByResetToken(token string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool { return u.ResetPasswordToken == token && token != "" })
}

func (r *fakeUserRepo) Create(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("no user with id %s", id)
	}
	for field, value := range updateDoc {
		switch field {
		case "is_verified":
			u.IsVerified = value.(bool)
		case "verification_code":
			u.VerificationCode = value.(string)
		case "verification_expires_at":
			u.VerificationExpiresAt = value.(time.Time)
		case "reset_password_token":
			u.ResetPasswordToken = value.(string)
		case "reset_password_expires_at":
			u.ResetPasswordExpiresAt = value.(time.Time)
		case "password_hash":
			u.PasswordHash = value.(string)
		case "token_hash":
			u.TokenHash = value.(string)
		case "last_login":
			u.LastLogin = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) PurgeExpiredUnverified(cutoff time.Time) (int64, error) {
	var n int64
	for id, u := range r.users {
		if !u.IsVerified && u.VerificationExpiresAt.Before(cutoff) {
			delete(r.users, id)
			n++
		}
	}
	return n, nil
}

// fakeEmailService records sends and can fail selected operations.
type fakeEmailService struct {
	verificationErr error
	welcomeErr      error
	resetErr        error
	successErr      error

	verificationCodes []string
	welcomeNames      []string
	resetURLs         []string
	successTo         []string
}

func (f *fakeEmailService) SendVerificationEmail(_ context.Context, _, code string) error {
	if f.verificationErr != nil {
		return f.verificationErr
	}
	f.verificationCodes = append(f.verificationCodes, code)
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(_ context.Context, _, name string) error {
	if f.welcomeErr != nil {
		return f.welcomeErr
	}
	f.welcomeNames = append(f.welcomeNames, name)
	return nil
}

func (f *fakeEmailService) SendPasswordResetEmail(_ context.Context, _, resetURL string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resetURLs = append(f.resetURLs, resetURL)
	return nil
}

func (f *fakeEmailService) SendResetSuccessEmail(_ context.Context, email string) error {
	if f.successErr != nil {
		return f.successErr
	}
	f.successTo = append(f.successTo, email)
	return nil
}

// newTestService wires the service against the fakes and a miniredis-backed
// auth cache.
func newTestService(t *testing.T) (*DefaultUserService, *fakeUserRepo, *fakeEmailService) {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = prev })

	repo := newFakeUserRepo()
	email := &fakeEmailService{}
	return &DefaultUserService{Repo: repo, Email: email}, repo, email
}

func TestSignup(t *testing.T) {
	svc, repo, email := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Jane", resp.Name)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.False(t, resp.IsVerified)
	assert.NotEmpty(t, resp.Token)

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
	assert.Len(t, stored.VerificationCode, 6)
	assert.True(t, stored.VerificationExpiresAt.After(time.Now()))
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Password1")))

	require.Len(t, email.verificationCodes, 1)
	assert.Equal(t, stored.VerificationCode, email.verificationCodes[0])
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "Other Jane", "jane@example.com", "Password2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignup_WeakPassword(t *testing.T) {
	svc, _, email := newTestService(t)

	tests := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"}
	for _, pw := range tests {
		_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", pw)
		assert.Error(t, err, "password %q should be rejected", pw)
	}
	assert.Empty(t, email.verificationCodes)
}

func TestSignup_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "", "jane@example.com", "Password1")
	assert.Error(t, err)

	_, err = svc.Signup(context.Background(), "Jane", "", "Password1")
	assert.Error(t, err)
}

func TestSignup_VerificationEmailFailureRollsBack(t *testing.T) {
	svc, repo, email := newTestService(t)
	email.verificationErr = errors.New("provider returned 500")

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.Error(t, err)

	// The half-created account must not linger; the email stays available.
	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Nil(t, usr)
}

func TestVerifyEmail(t *testing.T) {
	svc, repo, email := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	code := email.verificationCodes[0]

	usr, err := svc.VerifyEmail(context.Background(), code)
	require.NoError(t, err)
	assert.True(t, usr.IsVerified)

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.VerificationCode)

	require.Len(t, email.welcomeNames, 1)
	assert.Equal(t, "Jane", email.welcomeNames[0])
}

func TestVerifyEmail_WelcomeFailureIsNotSurfaced(t *testing.T) {
	svc, _, email := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	code := email.verificationCodes[0]

	email.welcomeErr = errors.New("provider returned 500")
	usr, err := svc.VerifyEmail(context.Background(), code)
	require.NoError(t, err)
	assert.True(t, usr.IsVerified)
}

func TestVerifyEmail_InvalidCode(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.VerifyEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrCodeInvalid)

	_, err = svc.VerifyEmail(context.Background(), "000000")
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	svc, repo, email := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	code := email.verificationCodes[0]

	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	err = repo.UpdateSetDocument(usr.ID, bson.M{"verification_expires_at": time.Now().Add(-time.Minute)})
	require.NoError(t, err)

	_, err = svc.VerifyEmail(context.Background(), code)
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	signup, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), "jane@example.com", "Password1")
	require.NoError(t, err)
	assert.Equal(t, signup.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	// A fresh login supersedes the old token.
	session := svc.CheckAuth(context.Background(), signup.Token)
	assert.False(t, session.IsAuthenticated)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "Password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.ID))

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TokenHash)

	session := svc.CheckAuth(context.Background(), resp.Token)
	assert.False(t, session.IsAuthenticated)
}

func TestCheckAuth(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	session := svc.CheckAuth(context.Background(), resp.Token)
	require.True(t, session.IsAuthenticated)
	assert.Equal(t, resp.ID, session.UserID)
	require.NotNil(t, session.User)
	assert.Equal(t, "Jane", session.User.Name)
	assert.Equal(t, "jane@example.com", session.User.Email)
	assert.False(t, session.User.IsVerified)
}

func TestCheckAuth_Failures(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.False(t, svc.CheckAuth(context.Background(), "").IsAuthenticated)
	assert.False(t, svc.CheckAuth(context.Background(), "not-a-jwt").IsAuthenticated)

	// A well-formed token for an unknown user resolves unauthenticated.
	orphan, err := utils.GenerateToken("ghost-id", "ghost@example.com", time.Hour)
	require.NoError(t, err)
	assert.False(t, svc.CheckAuth(context.Background(), orphan).IsAuthenticated)
}

func TestCheckAuth_CacheMissFallsBackToRecord(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	// Drop the cached hash; the stored token hash still authenticates.
	require.NoError(t, utils.GetAuthCacheClient().Del(context.Background(), utils.AuthCachePrefix+resp.ID).Err())

	session := svc.CheckAuth(context.Background(), resp.Token)
	assert.True(t, session.IsAuthenticated)

	// And the hit re-primes the cache.
	cached, err := utils.GetAuthCacheClient().Get(context.Background(), utils.AuthCachePrefix+resp.ID).Result()
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(resp.Token), cached)
}

func TestForgotPassword(t *testing.T) {
	svc, repo, email := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), "jane@example.com"))

	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ResetPasswordToken)
	assert.True(t, usr.ResetPasswordExpiresAt.After(time.Now()))

	require.Len(t, email.resetURLs, 1)
	assert.True(t, strings.HasSuffix(email.resetURLs[0], "/reset-password/"+usr.ResetPasswordToken))
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _, email := newTestService(t)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, email.resetURLs)
}

func TestForgotPassword_EmailFailurePropagates(t *testing.T) {
	svc, _, email := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)

	email.resetErr = errors.New("provider returned 500")
	err = svc.ForgotPassword(context.Background(), "jane@example.com")
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, repo, email := newTestService(t)

	resp, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(context.Background(), "jane@example.com"))

	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	token := usr.ResetPasswordToken

	require.NoError(t, svc.ResetPassword(context.Background(), token, "Password2"))

	// New password holds, token is single-use, sessions are revoked.
	_, err = svc.Login(context.Background(), "jane@example.com", "Password2")
	assert.NoError(t, err)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), token, "Password3"), ErrResetTokenInvalid)
	assert.False(t, svc.CheckAuth(context.Background(), resp.Token).IsAuthenticated)

	require.Len(t, email.successTo, 1)
	assert.Equal(t, "jane@example.com", email.successTo[0])
}

func TestResetPassword_InvalidToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "", "Password1"), ErrResetTokenInvalid)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "deadbeef", "Password1"), ErrResetTokenInvalid)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(context.Background(), "jane@example.com"))

	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	err = repo.UpdateSetDocument(usr.ID, bson.M{"reset_password_expires_at": time.Now().Add(-time.Minute)})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), usr.ResetPasswordToken, "Password2")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_SuccessEmailFailureIsNotSurfaced(t *testing.T) {
	svc, repo, email := newTestService(t)

	_, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "Password1")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(context.Background(), "jane@example.com"))

	usr, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)

	email.successErr = errors.New("provider returned 500")
	assert.NoError(t, svc.ResetPassword(context.Background(), usr.ResetPasswordToken, "Password2"))
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, VerifyPasswordComplexity("Password1"))
	assert.Error(t, VerifyPasswordComplexity("Pass1"))
	assert.Error(t, VerifyPasswordComplexity("password1"))
	assert.Error(t, VerifyPasswordComplexity("PASSWORD1"))
	assert.Error(t, VerifyPasswordComplexity("Passwords"))
}
