// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered shopper. The cart and the order references live on the user record.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email        string      // Lower-cased login identifier, unique across users.
	Name         string      // Display name captured at signup.
	PasswordHash string      // bcrypt hash of the user's password.
	Cart         Cart        // Ordered cart lines, at most one per (product, size).
	CartVersion  int64       // Incremented on every cart write, used for compare-and-swap updates.
	OrderIDs     []uuid.UUID // Ids of orders placed by this user, appended best-effort.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}
