package entities

import "time"

// GuideDocument is an ingested destination guide (pasted text or a scraped
// page) used to enrich reports with local tips.
type GuideDocument struct {
	DocID       uint   `gorm:"primaryKey" json:"doc_id"`
	Destination string `gorm:"index" json:"destination"`
	Title       string `json:"title"`
	SourceURL   string `json:"source_url"`
	Tags        string `json:"tags"`
	CreatedAt   time.Time
}

type GuideChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	Embedding []byte `json:"-"`
	CreatedAt time.Time
}
