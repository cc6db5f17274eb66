package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// the "users" table and the "user_roles" join table.
//
// CreateUser and UpdateUser write to both tables; callers that need the
// writes to be atomic run them inside [UnitOfWork.Do].
type userRepository struct {
	sqlStore
}

// CreateUser persists a new user record with its roles and returns the
// user with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()
	insert := r.dialect.builder().
		Insert(tableUsers).
		Columns("first_name", "last_name", "username", "password_hash", "email", "phone", "created_at").
		Values(user.FirstName, user.LastName, user.Username, user.PasswordHash, user.Email, user.Phone, user.CreatedAt)

	id, err := r.insertReturningID(ctx, insert)
	if err != nil {
		if r.classify(err) == UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}
	user.UserID = id

	if err = r.insertRoles(ctx, id, user.Roles); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user roles")
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// FindUserByUsername retrieves the user with the given username and roles.
//
// Returns [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

// FindUserByID retrieves the user with the given id and roles.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	row, err := r.queryRow(ctx, r.dialect.builder().Select(userColumns...).From(tableUsers).Where(where))
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	roles, err := r.loadRoles(ctx, user.UserID)
	if err != nil {
		return models.User{}, err
	}
	user.Roles = roles[user.UserID]

	return user, nil
}

// ListUsers returns one page of users ordered by id.
func (r *userRepository) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	log := logger.FromContext(ctx)
	page = page.Normalize()

	rows, err := r.query(ctx, r.dialect.builder().
		Select(userColumns...).
		From(tableUsers).
		OrderBy("id").
		Limit(uint64(page.Size)).
		Offset(page.Offset()))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, err
	}

	// rows are fully read and closed before roles are loaded
	users, err := scanAll(rows, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning users")
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}

	roles, err := r.loadRoles(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Roles = roles[users[i].UserID]
	}

	return users, nil
}

// UpdateUser overwrites the profile of user.UserID. PasswordHash is updated
// only when non-empty; roles are replaced only when user.Roles is non-nil.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	update := r.dialect.builder().
		Update(tableUsers).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("email", user.Email).
		Set("phone", user.Phone).
		Where(sq.Eq{"id": user.UserID})
	if user.PasswordHash != "" {
		update = update.Set("password_hash", user.PasswordHash)
	}

	affected, err := r.exec(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("error updating user")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if user.Roles == nil {
		return nil
	}

	if _, err = r.exec(ctx, r.dialect.builder().Delete(tableUserRoles).Where(sq.Eq{"user_id": user.UserID})); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("error clearing roles")
		return err
	}

	return r.insertRoles(ctx, user.UserID, user.Roles)
}

// DeleteUser removes the user. Roles, card, orders and keys are removed by
// cascading foreign keys.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	affected, err := r.exec(ctx, r.dialect.builder().Delete(tableUsers).Where(sq.Eq{"id": userID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UsernameExists reports whether a user with username exists.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	row, err := r.queryRow(ctx, r.dialect.builder().
		Select("COUNT(*)").
		From(tableUsers).
		Where(sq.Eq{"username": username}))
	if err != nil {
		return false, err
	}

	var count int64
	if err = row.Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UsernameExists").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

func (r *userRepository) insertRoles(ctx context.Context, userID int64, roles []models.Role) error {
	if len(roles) == 0 {
		return nil
	}

	insert := r.dialect.builder().Insert(tableUserRoles).Columns("user_id", "role")
	for _, role := range roles {
		insert = insert.Values(userID, string(role))
	}

	_, err := r.exec(ctx, insert)
	return err
}

// loadRoles returns the roles of the given users keyed by user id.
func (r *userRepository) loadRoles(ctx context.Context, userIDs ...int64) (map[int64][]models.Role, error) {
	rows, err := r.query(ctx, r.dialect.builder().
		Select("user_id", "role").
		From(tableUserRoles).
		Where(sq.Eq{"user_id": userIDs}).
		OrderBy("user_id", "role"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.loadRoles").Msg("error querying roles")
		return nil, err
	}

	type userRole struct {
		userID int64
		role   models.Role
	}
	pairs, err := scanAll(rows, func(row rowScanner) (userRole, error) {
		var ur userRole
		err := row.Scan(&ur.userID, &ur.role)
		return ur, err
	})
	if err != nil {
		return nil, err
	}

	roles := make(map[int64][]models.Role, len(userIDs))
	for _, p := range pairs {
		roles[p.userID] = append(roles[p.userID], p.role)
	}

	return roles, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash, &u.Email, &u.Phone, &u.CreatedAt)
	return u, err
}
