package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/hollis-cloud/resumerag/internal/db"
)

// CreateIndex creates an FT index from the given definition.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	args, err := buildCreateArgs(def)
	if err != nil {
		return err
	}

	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// IndexExists probes index existence via FT.INFO; "unknown index name" means absent.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "unknown index name") {
			return false, nil
		}
		return false, &db.Error{Op: db.OpIndexInfo, Err: err}
	}
	return true, nil
}

func buildCreateArgs(def *db.IndexDefinition) ([]string, error) {
	if def.Name == "" {
		return nil, errors.New("index name is required")
	}
	if def.Prefix == "" {
		return nil, errors.New("index prefix is required")
	}
	if def.VectorDim <= 0 {
		return nil, errors.New("vector DIM must be positive")
	}

	algo := def.VectorAlgo
	if algo == "" {
		algo = db.VectorHNSW
	}
	distance := def.VectorDistance
	if distance == "" {
		distance = db.DistanceCosine
	}
	contentAttr := def.ContentAttr
	if contentAttr == "" {
		contentAttr = "__content"
	}
	vectorAttr := def.VectorAttr
	if vectorAttr == "" {
		vectorAttr = "__vector"
	}

	attrs := []string{
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(def.VectorDim),
		"DISTANCE_METRIC", distance,
	}
	if algo == db.VectorHNSW {
		if def.VectorM > 0 {
			attrs = append(attrs, "M", strconv.Itoa(def.VectorM))
		}
		if def.VectorEFConstruct > 0 {
			attrs = append(attrs, "EF_CONSTRUCTION", strconv.Itoa(def.VectorEFConstruct))
		}
	}

	args := []string{
		def.Name,
		"ON", "HASH",
		"PREFIX", "1", def.Prefix,
		"SCHEMA",
		contentAttr, "TEXT",
		vectorAttr, "VECTOR", algo, strconv.Itoa(len(attrs)),
	}
	args = append(args, attrs...)

	return args, nil
}
