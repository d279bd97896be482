package serviceImp

import (
	"math"
	"sort"
	"strings"

	"tripbuddy/entities"
	"tripbuddy/pkg/dest/embedder"
	"tripbuddy/pkg/dest/repository"
)

type Svc struct {
	r   repository.GuideRepository
	emb *embedder.Client
}

func New(r repository.GuideRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(destination, title, tags, text, sourceURL string) (*entities.GuideDocument, int, error) {
	d := &entities.GuideDocument{
		Destination: strings.ToLower(strings.TrimSpace(destination)),
		Title:       title,
		Tags:        tags,
		SourceURL:   sourceURL,
	}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(chs)
		if err != nil {
			// degrade gracefully: keep chunks without embeddings
			embs = nil
		}
	}

	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: embBytes}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			cv := embedder.BytesToFloats(ch.Embedding)
			if len(cv) == 0 || len(cv) != len(qvec) {
				continue
			}
			var dot, nq, nd float64
			for i := range qvec {
				v, w := float64(qvec[i]), float64(cv[i])
				dot += v * w
				nq += v * v
				nd += w * w
			}
			if nq == 0 || nd == 0 {
				continue
			}
			list = append(list, scored{ch: ch, sc: dot / (math.Sqrt(nq) * math.Sqrt(nd))})
		}
	} else {
		// keyword fallback: score by how many query words the chunk carries
		words := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			text := strings.ToLower(ch.Text)
			score := 0.0
			for _, w := range words {
				if strings.Contains(text, w) {
					score++
				}
			}
			if score > 0 {
				list = append(list, scored{ch: ch, sc: score})
			}
		}
	}

	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error) {
	return s.r.DocsByIDs(ids)
}

func (s *Svc) Tips(destination string, k int) []string {
	chunks, err := s.Search(destination+" travel tips local food transport", k)
	if err != nil || len(chunks) == 0 {
		return nil
	}
	tips := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		t := strings.TrimSpace(ch.Text)
		// cut on a rune boundary so multibyte text stays valid
		if r := []rune(t); len(r) > 240 {
			t = string(r[:240])
		}
		if t != "" {
			tips = append(tips, t)
		}
	}
	return tips
}
