// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store interfaces used
// throughout the application, facilitating consistent and DRY testing across
// the codebase. Instead of defining inline mocks in individual test files,
// these standardized mock implementations can be reused.
//
// Each mock exposes function fields (CreateFn, GetByIDFn, ...) that override
// the default in-memory behavior when set, so tests can simulate specific
// error paths without building a full fake.
//
// Usage:
//
//	import "github.com/phrazzld/bank-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    users := mocks.NewMockUserStore()
//	    users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	        return nil, store.ErrUserNotFound
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
