package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/dto"
	"github.com/yatradesk/yatradesk-backend/internal/app/auth/jwt"
	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/user"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Session is the result of a successful registration or login.
type Session struct {
	User      user.Profile
	Token     string
	ExpiresAt time.Time
}

type Service interface {
	Register(context.Context, dto.RegisterRequest) (Session, error)
	Login(context.Context, dto.LoginRequest) (Session, error)
	GetProfile(context.Context, uuid.UUID) (user.Profile, error)
	UpdateProfile(context.Context, uuid.UUID, dto.UpdateProfileRequest) (user.Profile, error)
}

type authService struct {
	userRepo user.Repo
	tokens   jwt.TokenIssuer
	log      *zap.Logger
}

func New(ur user.Repo, ti jwt.TokenIssuer, log *zap.Logger) Service {
	return &authService{userRepo: ur, tokens: ti, log: log}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterRequest) (Session, error) {
	email := normalizeEmail(in.Email)

	// Advisory pre-check for a clean conflict response. The unique index on
	// email remains the authoritative guard against the check-then-insert race.
	_, err := a.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return Session{}, customErrors.ErrAlreadyExists
	case !errors.Is(err, customErrors.ErrNotFound):
		return Session{}, customErrors.WrapInternal(err, "Register")
	}

	passwordHash, err := argon2id.CreateHash(in.Password, argonParams)
	if err != nil {
		return Session{}, customErrors.WrapInternal(err, "Register")
	}

	role := user.Role(in.Role)
	if role == "" {
		role = user.RoleCustomer
	}

	now := time.Now()
	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err = a.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return Session{}, customErrors.ErrAlreadyExists
		}
		return Session{}, customErrors.WrapInternal(err, "Register")
	}

	return a.newSession(u)
}

func (a *authService) Login(ctx context.Context, in dto.LoginRequest) (Session, error) {
	u, err := a.userRepo.GetByEmailWithHash(ctx, normalizeEmail(in.Email))
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return Session{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return Session{}, customErrors.WrapInternal(err, "Login")
	}

	if !u.IsActive {
		return Session{}, customErrors.ErrAccountDeactivated
	}

	ok, err := argon2id.ComparePasswordAndHash(in.Password, u.PasswordHash)
	if err != nil {
		return Session{}, customErrors.WrapInternal(err, "Login")
	}
	if !ok {
		return Session{}, customErrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err = a.userRepo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		// Login stays successful; the timestamp is bookkeeping.
		a.log.Warn("failed to update last login", zap.String("user_id", u.ID.String()), zap.Error(err))
	} else {
		u.LastLoginAt = &now
	}

	return a.newSession(u)
}

func (a *authService) GetProfile(ctx context.Context, id uuid.UUID) (user.Profile, error) {
	u, err := a.userRepo.GetByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return user.Profile{}, customErrors.ErrNotFound
	case err != nil:
		return user.Profile{}, customErrors.WrapInternal(err, "GetProfile")
	}

	if !u.IsActive {
		return user.Profile{}, customErrors.ErrAccountDeactivated
	}

	return u.Profile(), nil
}

func (a *authService) UpdateProfile(ctx context.Context, id uuid.UUID, in dto.UpdateProfileRequest) (user.Profile, error) {
	u, err := a.userRepo.GetByIDWithHash(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return user.Profile{}, customErrors.ErrNotFound
	case err != nil:
		return user.Profile{}, customErrors.WrapInternal(err, "UpdateProfile")
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		u.Name = strings.TrimSpace(*in.Name)
	}

	// A password change needs both halves; anything less is a no-op.
	if in.CurrentPassword != "" && in.NewPassword != "" {
		ok, err := argon2id.ComparePasswordAndHash(in.CurrentPassword, u.PasswordHash)
		if err != nil {
			return user.Profile{}, customErrors.WrapInternal(err, "UpdateProfile")
		}
		if !ok {
			return user.Profile{}, customErrors.ErrInvalidCurrentPassword
		}
		newHash, err := argon2id.CreateHash(in.NewPassword, argonParams)
		if err != nil {
			return user.Profile{}, customErrors.WrapInternal(err, "UpdateProfile")
		}
		u.PasswordHash = newHash
	}

	u.UpdatedAt = time.Now()
	if err = a.userRepo.Update(ctx, u); err != nil {
		return user.Profile{}, customErrors.WrapInternal(err, "UpdateProfile")
	}

	return u.Profile(), nil
}

func (a *authService) newSession(u user.User) (Session, error) {
	token, exp, err := a.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		return Session{}, customErrors.WrapInternal(err, "IssueToken")
	}
	return Session{User: u.Profile(), Token: token, ExpiresAt: exp}, nil
}

// normalizeEmail fixes the matching policy for the unique index: emails are
// compared trimmed and lowercased, so "A@B.com" and "a@b.com" address the
// same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
