// Package policy decides what an authenticated identity may do with content.
package policy

import "inkwell/internal/domain/entity"

// Action names an operation subject to the access policy.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AccessPolicy is a pure decision function with no state and no side effects.
// An unauthenticated (zero) identity is never allowed anything.
type AccessPolicy struct{}

// NewAccessPolicy returns the single-owner access policy.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanCreate allows any authenticated identity to create content.
func (p *AccessPolicy) CanCreate(identity entity.Identity) bool {
	return !identity.IsZero()
}

// CanRead allows any authenticated identity to read any item.
func (p *AccessPolicy) CanRead(identity entity.Identity, item *entity.ContentItem) bool {
	return !identity.IsZero() && item != nil
}

// CanMutate allows update and delete only to the item's owner.
func (p *AccessPolicy) CanMutate(identity entity.Identity, item *entity.ContentItem) bool {
	if identity.IsZero() || item == nil {
		return false
	}

	return identity.AccountID == item.OwnerID
}

// Allows dispatches on action.
func (p *AccessPolicy) Allows(identity entity.Identity, action Action, item *entity.ContentItem) bool {
	switch action {
	case ActionCreate:
		return p.CanCreate(identity)
	case ActionRead:
		return p.CanRead(identity, item)
	case ActionUpdate, ActionDelete:
		return p.CanMutate(identity, item)
	default:
		return false
	}
}
