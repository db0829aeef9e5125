// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/user).
// This root package holds sentinel errors, validation error types, and the
// verified caller identity that every scoped operation receives.
package domain
