package db

// Vector index constants.
const (
	VectorHNSW     = "HNSW"
	VectorFlat     = "FLAT"
	DistanceCosine = "COSINE"
)

// IndexDefinition describes an FT index over hash keys with one content
// field and one vector field.
type IndexDefinition struct {
	Name        string
	Prefix      string
	ContentAttr string
	VectorAttr  string

	VectorDim         int
	VectorAlgo        string // HNSW or FLAT, default HNSW
	VectorDistance    string // default COSINE
	VectorM           int
	VectorEFConstruct int
}
