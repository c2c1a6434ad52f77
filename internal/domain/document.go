package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// StoredDocument is a (id, vector, text) triple persisted in a corpus.
type StoredDocument struct {
	ID     string
	Vector []float32
	Text   string
}

// DocumentID derives a stable id from text content, so identical text
// upserts to the same key (idempotent ingestion, overwrite semantics).
func DocumentID(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
