package knowledge

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"salon-assistant-backend/internal/model"
)

// Replies used by the conversational path when retrieval comes up empty.
const (
	NotFoundReply     = "I couldn't find that information. Would you like me to check available appointments?"
	EmptyQueryReply   = "I couldn't understand your question. Can you rephrase?"
	defaultMaxResults = 3
)

// Index is an in-memory vector index over salon knowledge snippets. The
// snippet set is small (a single salon's site), so exact nearest-neighbour
// search over all entries is cheaper than maintaining an external index.
type Index struct {
	embedder Embedder

	mu      sync.RWMutex
	entries []indexEntry

	// Spoken queries repeat a lot ("what are your prices"); cache their
	// embeddings to avoid a round trip per repetition.
	queryCache *cache.Cache
	maxResults int
}

type indexEntry struct {
	text   string
	vector []float32
}

// NewIndex creates an empty index on top of the given embedder.
func NewIndex(embedder Embedder) *Index {
	return &Index{
		embedder:   embedder,
		queryCache: cache.New(10*time.Minute, 30*time.Minute),
		maxResults: defaultMaxResults,
	}
}

// Reindex replaces the index contents with vectors for the given snippets.
func (i *Index) Reindex(ctx context.Context, snippets []model.KnowledgeSnippet) error {
	texts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		if strings.TrimSpace(s.Text) != "" {
			texts = append(texts, s.Text)
		}
	}

	if len(texts) == 0 {
		i.mu.Lock()
		i.entries = nil
		i.mu.Unlock()
		return nil
	}

	vectors, err := i.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("reindex snippets: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("reindex snippets: got %d vectors for %d texts", len(vectors), len(texts))
	}

	entries := make([]indexEntry, len(texts))
	for n, text := range texts {
		entries[n] = indexEntry{text: text, vector: vectors[n]}
	}

	i.mu.Lock()
	i.entries = entries
	i.mu.Unlock()
	log.Printf("knowledge index rebuilt with %d snippets", len(entries))
	return nil
}

// Search returns the most relevant snippet texts for the query, merged into
// one answer string, or a sentinel reply when nothing matches.
func (i *Index) Search(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return EmptyQueryReply, nil
	}

	i.mu.RLock()
	empty := len(i.entries) == 0
	i.mu.RUnlock()
	if empty {
		return NotFoundReply, nil
	}

	vector, err := i.queryVector(ctx, query)
	if err != nil {
		return "", err
	}

	type scored struct {
		text  string
		score float64
	}

	i.mu.RLock()
	results := make([]scored, 0, len(i.entries))
	for _, e := range i.entries {
		results = append(results, scored{text: e.text, score: cosineSimilarity(vector, e.vector)})
	}
	i.mu.RUnlock()

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].score > results[b].score
	})
	if len(results) > i.maxResults {
		results = results[:i.maxResults]
	}

	texts := make([]string, len(results))
	for n, r := range results {
		texts[n] = r.text
	}
	return strings.Join(texts, " "), nil
}

func (i *Index) queryVector(ctx context.Context, query string) ([]float32, error) {
	if cached, found := i.queryCache.Get(query); found {
		return cached.([]float32), nil
	}

	vector, err := i.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	i.queryCache.Set(query, vector, cache.DefaultExpiration)
	return vector, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for n := range a {
		dot += float64(a[n]) * float64(b[n])
		normA += float64(a[n]) * float64(a[n])
		normB += float64(b[n]) * float64(b[n])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
