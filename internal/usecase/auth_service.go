package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	idgen "github.com/riskibarqy/league-registry/internal/platform/id"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, item user.User) (AccessToken, error)
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

type SignUpInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

type SignInInput struct {
	Username string
	Password string
}

// AuthResult is returned by sign-up and sign-in.
type AuthResult struct {
	User  user.User
	Token AccessToken
}

type AuthService struct {
	userRepo         user.Repository
	hasher           PasswordHasher
	issuer           TokenIssuer
	idGen            idgen.Generator
	clock            clockwork.Clock
	allowAdminSignup bool
}

func NewAuthService(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	idGen idgen.Generator,
	allowAdminSignup bool,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		hasher:           hasher,
		issuer:           issuer,
		idGen:            idGen,
		clock:            clockwork.NewRealClock(),
		allowAdminSignup: allowAdminSignup,
	}
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SignUp")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if len(username) < minUsernameLength {
		return AuthResult{}, fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	}
	if email == "" || !strings.Contains(email, "@") {
		return AuthResult{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	role, err := user.ParseRole(input.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if role == user.RoleAdmin && !s.allowAdminSignup {
		return AuthResult{}, fmt.Errorf("%w: admin accounts cannot be self-registered", ErrForbidden)
	}

	if _, exists, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return AuthResult{}, fmt.Errorf("get user by username: %w", err)
	} else if exists {
		return AuthResult{}, fmt.Errorf("%w: username already taken", ErrConflict)
	}
	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return AuthResult{}, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := user.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, item); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return AuthResult{}, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issuer.Issue(ctx, item)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{User: item, Token: token}, nil
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SignIn")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	if err := s.hasher.Compare(item.PasswordHash, input.Password); err != nil {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	token, err := s.issuer.Issue(ctx, item)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{User: item, Token: token}, nil
}

func (s *AuthService) Me(ctx context.Context, principal user.Principal) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Me")
	defer span.End()

	if err := requireAuthenticated(principal); err != nil {
		return user.User{}, err
	}

	item, exists, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, principal.UserID)
	}

	return item, nil
}
