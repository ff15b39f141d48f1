package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is a piece of content owned by exactly one account.
// OwnerID is a weak reference: the owning account may no longer exist.
type ContentItem struct {
	ID        uuid.UUID
	Title     string
	Body      string
	OwnerID   uuid.UUID // Set from the verified identity at creation, never changed afterwards.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentView is a content item together with its owner's public data.
type ContentView struct {
	*ContentItem
	OwnerUsername string // Empty when the owning account no longer exists.
}
