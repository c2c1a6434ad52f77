// Package corpus persists (id, vector, text) triples per named corpus and
// answers nearest-neighbor queries over them.
package corpus

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hollis-cloud/resumerag/internal/db"
	"github.com/hollis-cloud/resumerag/internal/domain"
)

// store is the consumer interface for corpora (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// HNSWConfig tunes the vector index created for each corpus.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// Repo implements corpus storage over the db facade. Similarity is cosine:
// the index is created with DISTANCE_METRIC COSINE and query results come
// back ranked by similarity descending.
type Repo struct {
	store     store
	vectorDim int
	hnsw      HNSWConfig
}

// New creates a corpus repository for vectors of the given dimension.
func New(s store, vectorDim int) *Repo {
	return &Repo{store: s, vectorDim: vectorDim}
}

// WithHNSW overrides HNSW index parameters.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	r.hnsw = cfg
	return r
}

// EnsureIndex creates the corpus vector index if it does not exist yet.
// Two instances may race on startup, so ErrIndexExists from the create is
// still tolerated after the existence probe.
func (r *Repo) EnsureIndex(ctx context.Context, corpus string) error {
	exists, err := r.store.IndexExists(ctx, indexName(corpus))
	if err != nil {
		return fmt.Errorf("check index %s: %w", corpus, err)
	}
	if exists {
		return nil
	}

	err = r.store.CreateIndex(ctx, &db.IndexDefinition{
		Name:              indexName(corpus),
		Prefix:            keyPrefix(corpus),
		VectorDim:         r.vectorDim,
		VectorAlgo:        db.VectorHNSW,
		VectorDistance:    db.DistanceCosine,
		VectorM:           r.hnsw.M,
		VectorEFConstruct: r.hnsw.EFConstruct,
	})
	if err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", corpus, err)
	}
	return nil
}

// Upsert inserts or silently overwrites the document with its id.
func (r *Repo) Upsert(ctx context.Context, corpus string, doc domain.StoredDocument) error {
	if len(doc.Vector) != r.vectorDim {
		return fmt.Errorf("vector dimension mismatch: got %d, want %d", len(doc.Vector), r.vectorDim)
	}

	key := docKey(corpus, doc.ID)
	fields := map[string]string{
		"__content": doc.Text,
		"__vector":  vectorToBytes(doc.Vector),
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Has reports whether a document with the given id is already stored.
func (r *Repo) Has(ctx context.Context, corpus, id string) (bool, error) {
	ok, err := r.store.Exists(ctx, docKey(corpus, id))
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", docKey(corpus, id), err)
	}
	return ok, nil
}

// Query returns the stored texts of the topN nearest neighbors, most
// similar first. A corpus with fewer than topN documents returns what it
// has; an empty corpus returns an empty slice.
func (r *Repo) Query(ctx context.Context, corpus string, vector []float32, topN int) ([]string, error) {
	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName(corpus),
		Vector:       vector,
		K:            topN,
		ReturnFields: []string{"__content"},
	})
	if err != nil {
		return nil, fmt.Errorf("search knn %s: %w", corpus, err)
	}

	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		texts = append(texts, entry.Fields["__content"])
	}
	return texts, nil
}

func keyPrefix(corpus string) string {
	return fmt.Sprintf("%scorpus:%s:", domain.KeyPrefix, corpus)
}

func docKey(corpus, id string) string {
	return keyPrefix(corpus) + id
}

func indexName(corpus string) string {
	return fmt.Sprintf("%scorpus:%s:idx", domain.KeyPrefix, corpus)
}

// vectorToBytes serializes a []float32 into the binary layout FT expects.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
