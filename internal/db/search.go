package db

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit, ordered most-similar first.
type SearchEntry struct {
	Key    string
	Score  float64 // cosine similarity in [0,1]
	Fields map[string]string
}
