package model

import "time"

// Snippet kinds, matching the sections the scraper extracts from the salon site.
const (
	SnippetKindTitle   = "title"
	SnippetKindService = "service"
	SnippetKindFAQ     = "faq"
	SnippetKindContact = "contact"
)

// KnowledgeSnippet is one piece of salon information served to the chat path.
type KnowledgeSnippet struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"size:32;not null"`
	Text      string `gorm:"not null"`
	SourceURL string `gorm:"size:512"`
	CreatedAt time.Time `gorm:"not null"`
}
