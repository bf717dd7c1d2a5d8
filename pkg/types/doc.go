// Package types defines the Store and Table interfaces, the airport entity
// types (flights, passengers, transit counts), and the standard errors
// shared by every storage backend.
package types
