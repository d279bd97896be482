package repository

import "tripbuddy/entities"

type GuideRepository interface {
	CreateDoc(*entities.GuideDocument) error
	BulkInsertChunks([]entities.GuideChunk) error
	ListDocs() ([]entities.GuideDocument, error)
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error)
}
