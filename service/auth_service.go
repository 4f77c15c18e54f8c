package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage"
	"securitybot/storage/mock"
)

// MinPasswordLength applies to registration only.
const MinPasswordLength = 6

// SessionState mirrors what the UI needs to route a device.
type SessionState struct {
	Authenticated bool         `json:"authenticated"`
	Profile       *models.User `json:"profile"`
	Loading       bool         `json:"loading"`
}

type RegisterInput struct {
	Name            string
	NationalID      string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AuthService is a MOCK session layer: one fixed credential pair, an opaque
// marker in the key/value store, no hashing, no token validation, no expiry.
type AuthService interface {
	Login(ctx context.Context, deviceID int64, identifier, secret string) (bool, error)
	Register(ctx context.Context, deviceID int64, fields models.User, secret string) (bool, error)
	Logout(ctx context.Context, deviceID int64) error
	SessionState(ctx context.Context, deviceID int64) (SessionState, error)
	Peek(deviceID int64) SessionState
}

type session struct {
	checked bool
	profile *models.User
}

type authService struct {
	kv    storage.IKeyValueStorage
	users storage.IUserStorage
	log   logger.ILogger

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewAuthService(stg storage.IStorage, log logger.ILogger) AuthService {
	return &authService{
		kv:       stg.KV(),
		users:    stg.User(),
		log:      log,
		sessions: make(map[int64]*session),
	}
}

func ValidateLogin(identifier, secret string) error {
	if strings.TrimSpace(identifier) == "" || secret == "" {
		return invalid(ErrMissingFields)
	}
	return nil
}

func ValidateRegistration(in RegisterInput) error {
	fields := []struct{ name, value string }{
		{"name", in.Name},
		{"national_id", in.NationalID},
		{"email", in.Email},
		{"phone", in.Phone},
		{"password", in.Password},
		{"confirm_password", in.ConfirmPassword},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return invalid(ErrMissingFields, missing...)
	}
	if in.Password != in.ConfirmPassword {
		return invalid(ErrPasswordMismatch, "confirm_password")
	}
	if len(in.Password) < MinPasswordLength {
		return invalid(ErrPasswordTooShort, "password")
	}
	return nil
}

func (s *authService) Login(ctx context.Context, deviceID int64, identifier, secret string) (bool, error) {
	if identifier != mock.DefaultEmail || secret != mock.DefaultPassword {
		s.log.Info("login rejected", logger.Int64("device_id", deviceID))
		return false, nil
	}

	profile, err := s.users.GetByEmail(identifier)
	if err != nil {
		return false, fmt.Errorf("resolve profile: %w", err)
	}

	if err := s.kv.Set(ctx, deviceID, storage.KeyAuthToken, uuid.NewString()); err != nil {
		return false, fmt.Errorf("persist session marker: %w", err)
	}

	s.store(deviceID, profile)
	s.log.Info("login succeeded", logger.Int64("device_id", deviceID))
	return true, nil
}

func (s *authService) Register(ctx context.Context, deviceID int64, fields models.User, secret string) (bool, error) {
	if err := s.kv.Set(ctx, deviceID, storage.KeyAuthToken, uuid.NewString()); err != nil {
		return false, fmt.Errorf("persist session marker: %w", err)
	}

	profile := mergeProfile(s.users.Default(), fields)
	s.store(deviceID, &profile)
	s.log.Info("registered", logger.Int64("device_id", deviceID))
	return true, nil
}

func (s *authService) Logout(ctx context.Context, deviceID int64) error {
	if err := s.kv.Delete(ctx, deviceID, storage.KeyAuthToken); err != nil {
		return fmt.Errorf("clear session marker: %w", err)
	}
	s.store(deviceID, nil)
	s.log.Info("logged out", logger.Int64("device_id", deviceID))
	return nil
}

// SessionState resolves the persisted marker on first use per device. A
// failed read counts as logged out, and the next call retries.
func (s *authService) SessionState(ctx context.Context, deviceID int64) (SessionState, error) {
	if st := s.Peek(deviceID); !st.Loading {
		return st, nil
	}

	_, ok, err := s.kv.Get(ctx, deviceID, storage.KeyAuthToken)
	if err != nil {
		s.log.Error("failed to check session", logger.Error(err), logger.Int64("device_id", deviceID))
		return SessionState{}, fmt.Errorf("check session: %w", err)
	}

	var profile *models.User
	if ok {
		u := s.users.Default()
		profile = &u
	}
	s.store(deviceID, profile)
	return s.Peek(deviceID), nil
}

// Peek reports the cached state without touching storage.
func (s *authService) Peek(deviceID int64) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok || !sess.checked {
		return SessionState{Loading: true}
	}
	if sess.profile == nil {
		return SessionState{}
	}
	p := *sess.profile
	return SessionState{Authenticated: true, Profile: &p}
}

func (s *authService) store(deviceID int64, profile *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[deviceID] = &session{checked: true, profile: profile}
}

func mergeProfile(base, fields models.User) models.User {
	if fields.ID != "" {
		base.ID = fields.ID
	}
	if fields.Name != "" {
		base.Name = fields.Name
	}
	if fields.NationalID != "" {
		base.NationalID = fields.NationalID
	}
	if fields.Email != "" {
		base.Email = fields.Email
	}
	if fields.Phone != "" {
		base.Phone = fields.Phone
	}
	if fields.AvatarURL != nil {
		base.AvatarURL = fields.AvatarURL
	}
	return base
}
