package serviceImp

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/entities"
)

type memGuideRepo struct {
	docs   []entities.GuideDocument
	chunks []entities.GuideChunk
}

func (r *memGuideRepo) CreateDoc(d *entities.GuideDocument) error {
	d.DocID = uint(len(r.docs) + 1)
	r.docs = append(r.docs, *d)
	return nil
}

func (r *memGuideRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	r.chunks = append(r.chunks, cs...)
	return nil
}

func (r *memGuideRepo) ListDocs() ([]entities.GuideDocument, error) { return r.docs, nil }

func (r *memGuideRepo) AllChunks() ([]entities.GuideChunk, error) { return r.chunks, nil }

func (r *memGuideRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error) {
	m := map[uint]entities.GuideDocument{}
	for _, d := range r.docs {
		for _, id := range ids {
			if d.DocID == id {
				m[d.DocID] = d
			}
		}
	}
	return m, nil
}

func TestChunkTextSplitsOnNewlineAfterLimit(t *testing.T) {
	line := strings.Repeat("a", 400) + "\n"
	parts := chunkText(strings.Repeat(line, 6), 1000)
	require.Len(t, parts, 2)
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 1203) // limit plus the closing line
	}
}

func TestChunkTextSmallInput(t *testing.T) {
	parts := chunkText("short note", 1000)
	require.Len(t, parts, 1)
	assert.Equal(t, "short note", parts[0])

	assert.Empty(t, chunkText("", 1000))
}

func TestUpsertDocumentStoresChunks(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil) // no embedder: keyword mode

	doc, n, err := svc.UpsertDocument("  Paris ", "Paris on a budget", "budget,food", "Eat at the markets.\nThe metro is cheap.", "https://example.com/guide")
	require.NoError(t, err)
	assert.Equal(t, "paris", doc.Destination)
	assert.Equal(t, 1, n)
	require.Len(t, repo.chunks, 1)
	assert.Empty(t, repo.chunks[0].Embedding)
}

func TestKeywordSearchRanksByHits(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil)

	_, _, err := svc.UpsertDocument("paris", "Food guide", "food", "The markets sell fresh bread and cheese daily.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("paris", "Transit guide", "transport", "Buy a metro pass. The metro runs late. Metro maps are free.", "")
	require.NoError(t, err)

	hits, err := svc.Search("metro pass", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0].Text, "metro")

	none, err := svc.Search("zeppelin", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := New(&memGuideRepo{}, nil)
	hits, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestTipsTruncatesChunks(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil)

	long := "paris travel tips: " + strings.Repeat("walk everywhere, ", 40)
	_, _, err := svc.UpsertDocument("paris", "Tips", "", long, "")
	require.NoError(t, err)

	tips := svc.Tips("paris", 3)
	require.NotEmpty(t, tips)
	assert.LessOrEqual(t, len(tips[0]), 240)
}

func TestTipsTruncateOnRuneBoundary(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil)

	long := "tokyo travel tips: " + strings.Repeat("桜と寺院を巡る、", 60)
	_, _, err := svc.UpsertDocument("tokyo", "Tips", "", long, "")
	require.NoError(t, err)

	tips := svc.Tips("tokyo", 1)
	require.NotEmpty(t, tips)
	assert.True(t, utf8.ValidString(tips[0]))
	assert.LessOrEqual(t, utf8.RuneCountInString(tips[0]), 240)
}
