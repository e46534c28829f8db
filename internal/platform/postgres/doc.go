// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, plus the batch
// Preloader used when eager include loading is enabled. It handles query
// execution and the mapping between domain entities and database records.
package postgres
