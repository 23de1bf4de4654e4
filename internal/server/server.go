package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/diamond-terrain/internal/server/config"
	"github.com/OCharnyshevich/diamond-terrain/internal/server/world"
	"github.com/OCharnyshevich/diamond-terrain/pkg/world/gen"
)

// Server generates the configured area of terrain and reports on it.
type Server struct {
	cfg   *config.Config
	log   *slog.Logger
	world *world.World
}

// New creates a Server from cfg. cfg.Seed must be resolved.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	generator, err := gen.NewDiamondSquareGenerator(cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	return &Server{
		cfg:   cfg,
		log:   log,
		world: world.NewWorld(generator, log),
	}, nil
}

// World returns the server's chunk cache.
func (s *Server) World() *world.World {
	return s.world
}

// Start generates every chunk within the configured radius and logs
// statistics. It returns nil if ctx is cancelled part way.
func (s *Server) Start(ctx context.Context) error {
	p := s.cfg.Params()
	s.log.Info("generation started",
		"seed", p.Seed,
		"chunkWidth", p.ChunkWidth,
		"baseGridDistance", p.BaseGridDistance,
		"baseGridMaxValue", p.BaseGridMaxValue,
		"radius", s.cfg.Radius,
	)

	if _, err := s.world.PreGenerateRadius(ctx, s.cfg.Radius); err != nil {
		if errors.Is(err, context.Canceled) {
			s.log.Info("generation cancelled", "chunks", s.world.ChunkCount())
			return nil
		}
		return fmt.Errorf("pre-generate: %w", err)
	}

	s.world.ForEachChunk(func(c *gen.ValueChunk) {
		st := world.ChunkStats(c)
		s.log.Info("chunk",
			"chunkX", c.X,
			"chunkY", c.Y,
			"min", st.Min,
			"max", st.Max,
			"mean", st.Mean(),
			"stddev", st.StdDev(),
		)
	})

	st := s.world.Stats()
	s.log.Info("generation finished",
		"chunks", s.world.ChunkCount(),
		"values", st.Count,
		"min", st.Min,
		"max", st.Max,
		"mean", st.Mean(),
		"stddev", st.StdDev(),
	)
	return nil
}
