package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"quickcourt/internal/domain"
	"quickcourt/internal/modules/notification"
	"quickcourt/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, userType string) (string, error)
}

// Service is the signup/verification/login state machine. It owns the
// single active session (the demo models one browser) and the transient
// pending verification code. A mutex serializes transitions because the
// HTTP layer serves concurrently.
type Service struct {
	mu       sync.Mutex
	users    UserRepositoryInterface
	sessions SessionStore
	jwt      jwtService
	mailer   notification.Mailer

	current       *domain.User
	pendingCode   string
	authenticated bool
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepositoryInterface, sessions SessionStore, jwt jwtService, mailer notification.Mailer) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		mailer:   mailer,
	}
}

// Restore loads the persisted session slots. Mirrors the app's startup:
// a stored user only counts as authenticated if it was verified.
func (s *Service) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.sessions.Get(ctx, repository.SlotUser)
	if err != nil || !ok {
		return err
	}
	flag, ok, err := s.sessions.Get(ctx, repository.SlotAuth)
	if err != nil || !ok || flag != "true" {
		return err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return err
	}

	s.current = &user
	s.authenticated = user.EmailVerified
	return nil
}

// Signup creates an unverified user, generates a one-time code and hands
// it to the mailer. The new user becomes the pending user in context but
// is not authenticated until the code is confirmed.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		FullName:      req.FullName,
		Email:         email,
		PasswordHash:  string(hash),
		UserType:      domain.UserType(req.UserType),
		ProfileImage:  req.ProfileImage,
		EmailVerified: false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.pendingCode = code
	s.authenticated = false
	s.mu.Unlock()

	if err := s.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		return nil, err
	}

	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// VerifyOTP confirms the pending code. On mismatch the machine stays in
// pending-verification; on success the user record is marked verified and
// a session is established.
func (s *Service) VerifyOTP(ctx context.Context, code string) (*LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingCode == "" || code != s.pendingCode {
		return nil, ErrInvalidCode
	}
	if s.current == nil {
		return nil, ErrNoPendingUser
	}

	if err := s.users.SetEmailVerified(ctx, s.current.ID); err != nil {
		return nil, err
	}

	s.current.EmailVerified = true
	s.pendingCode = ""
	s.authenticated = true

	if err := s.persistSession(ctx); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(s.current.ID, string(s.current.UserType))
	if err != nil {
		return nil, err
	}

	out := *s.current
	out.PasswordHash = ""
	return &LoginResult{User: &out, AccessToken: token}, nil
}

// ResendOTP regenerates the code for the pending user. The previous code
// becomes invalid immediately; there is no cooldown in the demo.
func (s *Service) ResendOTP(ctx context.Context) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return ErrNoPendingUser
	}
	email := s.current.Email

	code, err := generateOTP()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.pendingCode = code
	s.mu.Unlock()

	return s.mailer.SendVerificationCode(ctx, email, code)
}

// Login authenticates a previously verified account, bypassing OTP.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
	s.authenticated = true

	if err := s.persistSession(ctx); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, err
	}

	out := *user
	out.PasswordHash = ""
	return &LoginResult{User: &out, AccessToken: token}, nil
}

// Logout clears the session and any pending code. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.pendingCode = ""
	s.authenticated = false

	if err := s.sessions.Delete(ctx, repository.SlotUser); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, repository.SlotAuth)
}

// UpdateProfile merges the given fields into the authenticated user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated || s.current == nil || s.current.ID != userID {
		return nil, ErrNotAuthenticated
	}

	if req.FullName != nil {
		s.current.FullName = *req.FullName
	}
	if req.ProfileImage != nil {
		s.current.ProfileImage = *req.ProfileImage
	}

	if err := s.users.Update(ctx, s.current); err != nil {
		return nil, err
	}
	if err := s.persistSession(ctx); err != nil {
		return nil, err
	}

	out := *s.current
	out.PasswordHash = ""
	return &out, nil
}

func (s *Service) CurrentUser() (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	out := *s.current
	out.PasswordHash = ""
	return &out, true
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// persistSession writes both slots. Callers hold the mutex.
func (s *Service) persistSession(ctx context.Context) error {
	stored := *s.current
	stored.PasswordHash = ""

	raw, err := json.Marshal(&stored)
	if err != nil {
		return err
	}
	if err := s.sessions.Set(ctx, repository.SlotUser, string(raw)); err != nil {
		return err
	}
	return s.sessions.Set(ctx, repository.SlotAuth, "true")
}

// generateOTP returns six ASCII digits, uniform over [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
