package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same name already exists in the database.
	ErrUserAlreadyExists = errors.New("user name already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrCatalogAlreadyExists is returned when a seller attempts to create a
	// second catalog; the unique constraint on the seller id rejects it.
	ErrCatalogAlreadyExists = errors.New("catalog already exists for this seller")

	// ErrSellerNotFound is returned when a catalog insert references a seller
	// id that does not exist in the users table.
	ErrSellerNotFound = errors.New("seller was not found")

	// ErrCatalogNotFound is returned when an order references a seller who has
	// no catalog, or a catalog lookup matches no row.
	ErrCatalogNotFound = errors.New("catalog was not found")

	// ErrProductsNotSaved is returned when the bulk product insert completes
	// without a driver error but persists fewer rows than were supplied.
	// The surrounding transaction must be rolled back in that case.
	ErrProductsNotSaved = errors.New("products were not saved")

	// ErrOrderNotCreated is returned when the order insert affects zero rows.
	ErrOrderNotCreated = errors.New("order was not created")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
