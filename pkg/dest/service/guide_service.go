package service

import "tripbuddy/entities"

type GuideService interface {
	UpsertDocument(destination, title, tags, text, sourceURL string) (*entities.GuideDocument, int, error)
	Search(query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error)
	// Tips collects a few short guide snippets for a destination, for the
	// report and the AI summary prompt. Empty when nothing was ingested.
	Tips(destination string, k int) []string
}
