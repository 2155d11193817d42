package learning

import (
	"time"

	"github.com/wordnest/backend/internal/domain/shared"
)

// DefaultPronunciationLanguage is used when no language code is supplied.
const DefaultPronunciationLanguage = "en"

// Pronunciation is a spoken rendering of an item's word, either a pre-recorded
// audio file or a text entry for client-side speech synthesis.
type Pronunciation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID    uint      `gorm:"not null;index" json:"itemId"`
	Text      string    `gorm:"size:255;not null" json:"text"`
	AudioURL  *string   `gorm:"size:255" json:"audioUrl"`
	Language  string    `gorm:"size:10;not null;default:'en'" json:"language"`
	IsDefault bool      `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (Pronunciation) TableName() string {
	return "pronunciations"
}

// NewPronunciation creates a pronunciation for an item.
func NewPronunciation(itemID uint, text, language string) (*Pronunciation, error) {
	if itemID == 0 || text == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item ID and pronunciation text are required")
	}
	if language == "" {
		language = DefaultPronunciationLanguage
	}
	return &Pronunciation{
		ItemID:   itemID,
		Text:     text,
		Language: language,
	}, nil
}
