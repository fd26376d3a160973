// Package actor models the authenticated caller of an operation. Handlers
// use it to enforce ownership and role checks before touching aggregates.
package actor
