package service

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/lib/session"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for admin password hashes.
const BcryptCost = 10

const invalidCredentials = "Invalid username or password"

// dummyHash is compared against when the username is unknown, so both
// failure paths take about as long.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("salon-dummy-password"), BcryptCost)

type AuthService struct {
	admins   AdminStore
	sessions *session.Manager
}

func NewAuthService(admins AdminStore, sessions *session.Manager) *AuthService {
	return &AuthService{admins: admins, sessions: sessions}
}

func isNotFound(err error) bool {
	var httpErr *errs.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

// Register creates an admin. It fails with 400 for a short password and
// 409 when the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.Admin, error) {
	if utf8.RuneCountInString(password) < model.MinPasswordLength {
		return nil, errs.NewBadRequestError("Password must be at least 6 characters", true, nil,
			[]errs.FieldError{{Field: "password", Error: "must be at least 6 characters"}}, nil)
	}

	existing, err := s.admins.GetAdminByUsername(ctx, username)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("Username already exists", true, errs.Ptr("ADMIN_ALREADY_EXISTS"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, err
	}

	// A concurrent registration still loses on the unique index, which the
	// error handler reports as 409.
	admin, err := s.admins.CreateAdmin(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "admin_registered").
		Str("admin_id", admin.ID.String()).
		Msg("Admin registered")

	return admin, nil
}

// Login checks the credentials. Unknown usernames and wrong passwords
// produce the same 401.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.admins.GetAdminByUsername(ctx, username)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		zerolog.Ctx(ctx).Warn().
			Str("event", "admin_login_failed").
			Str("admin_id", admin.ID.String()).
			Msg("Wrong password")
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	return admin, nil
}

// StartSession issues a session token for admin.
func (s *AuthService) StartSession(admin *model.Admin) (string, *session.Claims, error) {
	return s.sessions.Issue(admin)
}

// EndSession revokes the session described by claims.
func (s *AuthService) EndSession(ctx context.Context, claims *session.Claims) error {
	return s.sessions.Revoke(ctx, claims)
}

// Me returns the admin behind a session. An admin deleted since the
// session started is treated as signed out.
func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.admins.GetAdminByID(ctx, id)
	if isNotFound(err) {
		return nil, errs.NewUnauthorizedError("Session is no longer valid", true)
	}
	return admin, err
}
