package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/StarJun26/users-api/internal/store"
	"github.com/StarJun26/users-api/types"
	"github.com/rs/zerolog"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]types.User, error)
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id int) error
}

// UserService encapsulates user use-cases. It holds no state between
// calls; the repository owns the durable record set.
type UserService struct {
	repo   UserRepository
	hasher PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo UserRepository, hasher PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns all users in store order.
func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// Get returns the user with the given id, or store.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates email uniqueness, maps the request onto a new user,
// hashes the password, and persists the record. The plaintext password
// is never stored.
func (s *UserService) Create(ctx context.Context, req types.CreateUserRequest) (types.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return types.User{}, err
	}

	user, err := types.NewUser(req)
	if err != nil {
		return types.User{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hashed

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return types.User{}, emailTakenError(req.Email)
		}
		return types.User{}, err
	}

	s.logger.Info().Int("user_id", created.ID).Msg("user created")
	return created, nil
}

// Update applies a partial update to an existing user. The email
// uniqueness check runs only when the request changes the email, and
// the password hash is recomputed only when a non-empty password is
// supplied; absent fields keep their stored values.
func (s *UserService) Update(ctx context.Context, id int, req types.UpdateUserRequest) (types.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.User{}, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return types.User{}, err
		}
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return types.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := req.ApplyTo(&user); err != nil {
		return types.User{}, err
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return types.User{}, emailTakenError(user.Email)
		}
		return types.User{}, err
	}

	s.logger.Info().Int("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes the user with the given id, or fails with
// store.ErrNotFound.
func (s *UserService) Delete(ctx context.Context, id int) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user deleted")
	return nil
}

// checkEmailFree is a fast-path check; the unique constraint on
// users.email is the actual guarantee under concurrent writes.
func (s *UserService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return emailTakenError(email)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func emailTakenError(email string) error {
	return fmt.Errorf("user with the email %q already exists: %w", email, store.ErrEmailTaken)
}
