// Package store defines the persistence gateway consumed by the service
// layer: narrow per-entity repository interfaces, shared sentinel errors,
// and transaction helpers. Services depend only on these interfaces, which
// allows substituting in-memory fakes for tests; the concrete PostgreSQL
// implementations live in internal/platform/postgres.
package store
