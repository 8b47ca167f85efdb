// Package service provides application-level services for managing bank
// accounts and their transaction ledgers. Services validate input, apply
// business rules, and mutate state exclusively through the persistence
// interfaces defined in internal/store.
package service
