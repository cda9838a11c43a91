// Package user implements the account entity for the tracking system.
//
// Users are read-mostly from the application's perspective: registration and
// authentication are delegated to the external auth collaborator, and the
// application only mutates the owner-editable profile fields. Role is an
// explicit enumerated type gating dispatcher operations.
package user
