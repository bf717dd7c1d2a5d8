package types

import "errors"

// Filter selects entities in Table.Fetch. Keys are table specific; values may
// be native Go values or their string forms (as typed on the command line).
type Filter map[string]any

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity struct.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id int64) (any, error)

	// Set creates or updates an entity. When id is 0 a new auto-increment
	// ID is assigned. Returns the actual ID used.
	Set(id int64, data any) (int64, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id int64) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table.
	Fetch(filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter")
)

// Entity validation errors.
var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidAirport = errors.New("airport code must not be empty")
	ErrInvalidCount   = errors.New("passenger count must not be negative")
	ErrInvalidStatus  = errors.New("invalid flight status")
	ErrInvalidName    = errors.New("passenger name must not be empty")
	ErrInvalidAge     = errors.New("passenger age out of range")
	ErrUnknownFlight  = errors.New("flight does not exist")
)

// Standard table names for Store.GetTable.
const (
	TableFlights    = "flights"
	TablePassengers = "passengers"
	TableTransits   = "transits"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TableFlights,
	TablePassengers,
	TableTransits,
}
