package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

// userService manages user accounts: self registration, the username probe,
// and account administration by managers and admins.
type userService struct {
	userRepository store.UserRepository
	unitOfWork     store.UnitOfWork
	validator      validators.Validator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, unitOfWork store.UnitOfWork, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		unitOfWork:       unitOfWork,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// Register creates an account with the USER role. Roles given by the caller
// are ignored.
func (u *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	user.Roles = []models.Role{models.RoleUser}
	return u.create(ctx, user)
}

// UsernameExists reports whether username is taken. Absence is not an error.
func (u *userService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, ErrInvalidDataProvided
	}

	exists, err := u.userRepository.UsernameExists(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UsernameExists").Msg("error checking username")
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// CreateUser creates an account with the given roles, USER when none are
// given.
func (u *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if len(user.Roles) == 0 {
		user.Roles = []models.Role{models.RoleUser}
	}
	return u.create(ctx, user)
}

func (u *userService) create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	if err := u.validator.Validate(ctx, user); err != nil {
		log.Info().Err(err).Str("func", "*userService.create").Msg("invalid user data provided")
		return models.User{}, translateError(err)
	}

	hash, err := utils.HashPassword(user.Password, u.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.create").Msg("error hashing password")
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.Password = ""

	// the user row and its roles are written together or not at all
	var created models.User
	err = u.unitOfWork.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		created, err = repos.UserRepository.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.create").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, translateError(err)
	}

	return created, nil
}

func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, translateError(err)
	}

	return user, nil
}

func (u *userService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx, page.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, translateError(err)
	}

	return users, nil
}

// UpdateUser overwrites names, email and phone of user.UserID. The password
// is replaced when given, the roles when non-nil. The username never changes.
func (u *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, user, "Password", "Email", "Roles"); err != nil {
		log.Info().Err(err).Str("func", "*userService.UpdateUser").Msg("invalid user data provided")
		return models.User{}, translateError(err)
	}

	if user.Password != "" {
		hash, err := utils.HashPassword(user.Password, u.passwordHashCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, err
		}
		user.PasswordHash = hash
		user.Password = ""
	}

	err := u.unitOfWork.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		return repos.UserRepository.UpdateUser(ctx, user)
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", user.UserID).Msg("error updating user")
		return models.User{}, translateError(err)
	}

	return u.GetUser(ctx, user.UserID)
}

func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return translateError(err)
	}

	return nil
}

func (u *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	exists, err := u.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = u.create(ctx, models.User{
		Username: username,
		Password: password,
		Roles:    slices.Clone(models.AllRoles),
	})
	if errors.Is(err, ErrDuplicateUsername) {
		return nil
	}
	if err != nil {
		return err
	}

	u.logger.Info().Str("func", "*userService.EnsureAdmin").Str("username", username).Msg("admin account created")
	return nil
}
