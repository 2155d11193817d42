package learning

import (
	"time"

	"github.com/wordnest/backend/internal/domain/identity"
)

// LearningItem is a photo (plus optional voice recording) flashcard belonging
// to a category.
//
// Ownership and visibility are coupled: public items are admin-authored and
// carry no owner; private items belong to the child that created them, except
// when the owner row could not be verified at create time, in which case the
// item is private and ownerless.
type LearningItem struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *uint          `gorm:"index" json:"userId"`
	CategoryID  uint           `gorm:"not null;index" json:"categoryId"`
	ItemName    string         `gorm:"size:255;not null" json:"itemName"`
	ImageURL    string         `gorm:"size:255;not null" json:"imageUrl"`
	VoiceURL    *string        `gorm:"size:255" json:"voiceUrl"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	IsPublic    bool           `gorm:"not null;default:false" json:"isPublic"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User        *identity.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (LearningItem) TableName() string {
	return "learning_items"
}

// Ownership is the computed owner/visibility pair a new item receives.
type Ownership struct {
	UserID   *uint
	IsPublic bool
}

// OwnershipFor computes the ownership and visibility of a newly created item.
//
// Admin-authored items are public and ownerless. Items from a registered child
// are private and owned by that child, but only when ownerVerified confirms the
// user row still exists; otherwise the owner degrades to nil so the row never
// dangles. Anonymous callers produce private, ownerless items.
func OwnershipFor(caller identity.Principal, ownerVerified bool) Ownership {
	if caller.IsAdmin() {
		return Ownership{UserID: nil, IsPublic: true}
	}
	if id, ok := caller.UserID(); ok && ownerVerified {
		owner := id
		return Ownership{UserID: &owner, IsPublic: false}
	}
	return Ownership{UserID: nil, IsPublic: false}
}

// CanBeUpdatedBy reports whether the caller may modify this item. Admin may
// always; a registered child may only update an item it owns. An ownerless
// private item has no owner id to match, so it is immutable to non-admins.
func (i *LearningItem) CanBeUpdatedBy(caller identity.Principal) bool {
	if caller.IsAdmin() {
		return true
	}
	callerID, ok := caller.UserID()
	if !ok || i.UserID == nil {
		return false
	}
	return callerID == *i.UserID
}

// Visibility describes which items a caller may see in list reads. Public
// items are always visible; OwnerID, when set, additionally admits the items
// owned by that user.
type Visibility struct {
	OwnerID *uint
}

// VisibilityFor computes the list-read visibility filter for a caller. Note
// that single-item fetch by ID intentionally applies no filter.
func VisibilityFor(caller identity.Principal) Visibility {
	if id, ok := caller.UserID(); ok {
		owner := id
		return Visibility{OwnerID: &owner}
	}
	return Visibility{}
}
