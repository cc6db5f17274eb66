package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user cannot be created
	// because the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoCreditCardWasFound is returned when the user has no linked card.
	ErrNoCreditCardWasFound = errors.New("no credit card was found")

	// ErrCreditCardAlreadyExists is returned when a second card is linked
	// to the same user.
	ErrCreditCardAlreadyExists = errors.New("credit card already linked")

	// ErrNoCarPackageWasFound is returned when no package matches the
	// requested name or id.
	ErrNoCarPackageWasFound = errors.New("no car package was found")

	// ErrCarPackageAlreadyExists is returned when the package name is taken.
	ErrCarPackageAlreadyExists = errors.New("car package already exists")

	// ErrCarPackageInUse is returned when a package that cars still
	// reference is deleted.
	ErrCarPackageInUse = errors.New("car package is referenced by cars")

	// ErrNoCarWasFound is returned when no car matches the request,
	// including when a package has no available car to reserve.
	ErrNoCarWasFound = errors.New("no car was found")

	// ErrCarAlreadyExists is returned when the registration number is taken.
	ErrCarAlreadyExists = errors.New("car with this registration number already exists")

	// ErrNoOrderWasFound is returned when no order matches the request.
	ErrNoOrderWasFound = errors.New("no order was found")

	// ErrOrderAlreadyReturned is returned when the car of an order is
	// returned a second time.
	ErrOrderAlreadyReturned = errors.New("order was already returned")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewStorage] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
