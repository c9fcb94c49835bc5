package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/store"
	"github.com/Ramyash8/hotel-reservation-system2/validator"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users  store.Collection[models.User]
	logger logger.Logger
	cost   int
}

type UserServiceOptions struct {
	Users  store.Collection[models.User]
	Logger logger.Logger
	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:  opts.Users,
		logger: opts.Logger,
		cost:   opts.BcryptCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers an account. Emails are unique, ignoring case.
func (s *UserService) CreateUser(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	if err := validator.ValidateSignup(&req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	existing, err := s.users.FindWhere(ctx, store.Filter{"email": email})
	if err != nil {
		return nil, apperrors.DBError("failed to look up user", err)
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = constants.RoleGuest
	}
	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, apperrors.DBError("failed to create user", err)
	}

	s.logger.Info("user %s registered as %s", user.ID, user.Role)
	return user, nil
}

// Authenticate returns the user owning email when password matches
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.users.FindWhere(ctx, store.Filter{"email": normalizeEmail(email)})
	if err != nil {
		return nil, apperrors.DBError("failed to look up user", err)
	}
	if len(users) == 0 {
		return nil, apperrors.ErrInvalidCredentials
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("stored password hash of user %s is unusable: %v", user.ID, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID returns one user
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return findOr(ctx, s.users, id, apperrors.ErrUserNotFound)
}

// SeedUser describes an account created at startup
type SeedUser struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// DefaultSeedUsers are the demo accounts of a local deployment
var DefaultSeedUsers = []SeedUser{
	{ID: "user-1", Name: "Alice Owner", Email: "alice@example.com", Password: "password", Role: constants.RoleOwner},
	{ID: "user-2", Name: "Bob Guest", Email: "bob@example.com", Password: "password", Role: constants.RoleGuest},
	{ID: "admin-user", Name: "Admin", Email: "admin@lodgify.lite", Password: "adminpassword", Role: constants.RoleAdmin},
}

// Seed inserts the given accounts unless their email is already taken
func (s *UserService) Seed(ctx context.Context, seeds []SeedUser) error {
	for _, seed := range seeds {
		existing, err := s.users.FindWhere(ctx, store.Filter{"email": normalizeEmail(seed.Email)})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), s.cost)
		if err != nil {
			return err
		}
		user := &models.User{ID: seed.ID, Name: seed.Name, Email: normalizeEmail(seed.Email), Password: string(hash), Role: seed.Role}
		if err := s.users.Insert(ctx, user); err != nil {
			return err
		}
		s.logger.Debug("seeded user %s", user.Email)
	}
	return nil
}
