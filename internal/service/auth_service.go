package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"
	"github.com/CollabR18X/CollabR18X/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Verified against unknown emails so lookup misses cost the same as hash
// mismatches.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=2$c2Vzc2lvbi1kdW1teS1zYWx0$pJPu0vUdmXkYDnM8NqIOLQ0WDe3BNPzW0ZO1hxRUd0s"

const (
	minPasswordBytes = 8
	maxPasswordBytes = 100
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	IPAddress *string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type AuthService struct {
	users        repository.UserRepository
	sessions     *SessionService
	securityLogs repository.SecurityLogRepository
	passwordHash PasswordHasher
}

func NewAuthService(
	users repository.UserRepository,
	sessions *SessionService,
	securityLogs repository.SecurityLogRepository,
	passwordHash PasswordHasher,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		securityLogs: securityLogs,
		passwordHash: passwordHash,
	}
}

// Register creates the account and logs the user straight in. When the
// account is created but the session cannot be, the user is returned
// together with ErrSessionCreateFailed: the account exists, the caller is
// not logged in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, "", ErrInvalidInput
	}
	if !passwordLengthOK(input.Password) {
		return nil, "", ErrPasswordLength
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: &hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return user, "", err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, map[string]any{"source": "register"})
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*entity.User, string, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, "", ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, "", ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return user, token, nil
}

// Logout destroys the session behind token. Calling it with an unknown or
// already expired token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string, userID *uuid.UUID, ipAddress *string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.PasswordHash == nil {
		return ErrNoPasswordSet
	}
	if !s.passwordHash.Verify(*user.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}
	if !passwordLengthOK(newPassword) {
		return ErrPasswordLength
	}
	if s.passwordHash.Verify(*user.PasswordHash, newPassword) {
		return ErrSamePassword
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &userID, nil, entity.PasswordChanged, nil)
	return nil
}

// passwordLengthOK checks UTF-8 byte length, not character count.
func passwordLengthOK(password string) bool {
	return len(password) >= minPasswordBytes && len(password) <= maxPasswordBytes
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}
