// Package seed populates the best-practices corpus from a YAML file at
// startup so a fresh deployment has guidance to retrieve.
package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Ingestor stores one guidance text into the corpus.
type Ingestor interface {
	Ingest(ctx context.Context, text string) error
}

type seedFile struct {
	Practices []string `yaml:"practices"`
}

// Service seeds guidance entries. Ingestion is idempotent via content-hash
// ids, so re-running at every startup is safe.
type Service struct {
	ingest Ingestor
	log    *zap.Logger
}

func New(ingest Ingestor, log *zap.Logger) *Service {
	return &Service{ingest: ingest, log: log}
}

// FromFile reads the seed file and ingests every entry. A broken file is an
// error; a failed single entry is logged and skipped so the rest still lands.
func (s *Service) FromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	seeded := 0
	for _, text := range f.Practices {
		if err := s.ingest.Ingest(ctx, text); err != nil {
			s.log.Warn("seed entry failed", zap.Error(err))
			continue
		}
		seeded++
	}

	s.log.Info("best practices seeded",
		zap.Int("entries", len(f.Practices)),
		zap.Int("seeded", seeded),
	)
	return nil
}
