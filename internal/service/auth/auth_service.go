package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/crypto"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/phrazzld/bank-api/internal/validation"
)

// UserView is the caller-facing projection of a user. It never includes the
// password hash or the SSN, encrypted or otherwise.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	CreatedAt   time.Time `json:"created_at"`
}

// Result bundles the sanitized user view with a freshly issued session token.
type Result struct {
	User  *UserView `json:"user"`
	Token string    `json:"token"`
}

// Service handles signup, login, logout, and token verification.
// Each user has at most one live session: login revokes all prior sessions
// before creating the new one.
type Service struct {
	tx              store.Transactor
	users           store.UserStore
	sessions        store.SessionStore
	tokens          TokenService
	encryptor       *crypto.Encryptor
	hasher          PasswordHasher
	verifier        PasswordVerifier
	sessionLifetime time.Duration
	logger          *slog.Logger
}

// NewService creates a new auth Service.
func NewService(
	tx store.Transactor,
	users store.UserStore,
	sessions store.SessionStore,
	tokens TokenService,
	encryptor *crypto.Encryptor,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	sessionLifetime time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tx:              tx,
		users:           users,
		sessions:        sessions,
		tokens:          tokens,
		encryptor:       encryptor,
		hasher:          hasher,
		verifier:        verifier,
		sessionLifetime: sessionLifetime,
		logger:          logger.With("component", "auth_service"),
	}
}

// Signup validates the payload, creates the user with a hashed password and
// an encrypted SSN, opens a session, and returns the sanitized user view
// plus the session token. Returns a *validation.Error listing all
// violations, or ErrEmailTaken when the normalized email already exists.
// No persistence mutation happens on any failure path.
func (s *Service) Signup(ctx context.Context, req validation.SignupRequest) (*Result, error) {
	data, err := validation.ValidateSignup(req)
	if err != nil {
		return nil, err
	}

	_, err = s.users.GetByEmail(ctx, data.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !store.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	// The slow primitives run before the transaction opens so no database
	// resources are held while hashing.
	hashedPassword, err := s.hasher.Hash(data.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	encryptedSSN, err := s.encryptor.Encrypt(data.SSN)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt SSN: %w", err)
	}

	user, err := domain.NewUser(domain.NewUserParams{
		Email:          data.Email,
		HashedPassword: hashedPassword,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		PhoneNumber:    data.PhoneNumber,
		DateOfBirth:    data.DateOfBirth,
		EncryptedSSN:   encryptedSSN,
		Address:        data.Address,
		City:           data.City,
		State:          data.State,
		ZipCode:        data.ZipCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct user: %w", err)
	}

	session, err := domain.NewSession(user.ID, s.sessionLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to construct session: %w", err)
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.sessions.WithTx(tx).Create(ctx, session)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// Lost a race on the email between the check and the insert.
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return &Result{User: viewOf(user), Token: token}, nil
}

// Login verifies the credentials, replaces any existing sessions for the
// user with a single new one, and returns the user view plus a session
// token. Unknown emails and wrong passwords both return
// ErrInvalidCredentials with no distinguishing detail.
func (s *Service) Login(ctx context.Context, req validation.LoginRequest) (*Result, error) {
	data, err := validation.ValidateLogin(req)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, data.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, data.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := domain.NewSession(user.ID, s.sessionLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to construct session: %w", err)
	}

	// Revoke-then-create in one transaction enforces at most one live
	// session per user, even under concurrent logins.
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		sessions := s.sessions.WithTx(tx)
		if _, err := sessions.DeleteByUserID(ctx, user.ID); err != nil {
			return err
		}
		return sessions.Create(ctx, session)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace session: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &Result{User: viewOf(user), Token: token}, nil
}

// Logout revokes the session referenced by the token. A missing token, an
// unparseable token, and an already-deleted session are all no-ops that
// still succeed: "already logged out" is never an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		s.logger.Debug("logout with unusable token", "error", err)
		return nil
	}

	err = s.sessions.Delete(ctx, claims.SessionID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("user logged out", "user_id", claims.UserID)
	return nil
}

// VerifyToken authenticates a caller-presented token. Beyond signature and
// expiry, the backing session record must still exist and belong to the
// token's user; revoking the record invalidates the token immediately even
// if the signature would otherwise still verify.
func (s *Service) VerifyToken(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.UserID != claims.UserID {
		return nil, ErrInvalidToken
	}

	if session.ExpiredAt(time.Now().UTC()) {
		return nil, ErrExpiredToken
	}

	return claims, nil
}

// viewOf projects a user onto its sanitized caller-facing view.
func viewOf(user *domain.User) *UserView {
	return &UserView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		City:        user.City,
		State:       user.State,
		ZipCode:     user.ZipCode,
		CreatedAt:   user.CreatedAt,
	}
}
