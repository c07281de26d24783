package service

import (
	"context"

	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
	"github.com/rs/zerolog"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	articles  repository.ArticleRepository
	validator *validation.Validator
	log       zerolog.Logger
}

func newStatsService(articles repository.ArticleRepository, validator *validation.Validator, log zerolog.Logger) *statsService {
	return &statsService{
		articles:  articles,
		validator: validator,
		log:       log.With().Str("service", "stats").Logger(),
	}
}

// Update increments one counter of an article, mirroring it into the index
func (s *statsService) Update(ctx context.Context, slug, stat string, increment *int) (*models.Stats, error) {
	if err := validation.ValidateSlugParam(slug); err != nil {
		return nil, err
	}
	delta, err := s.validator.ValidateStatUpdate(stat, increment)
	if err != nil {
		return nil, err
	}

	stats, err := s.articles.UpdateStats(ctx, slug, stat, delta)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("slug", slug).
		Str("stat", stat).
		Int("delta", delta).
		Msg("Stats updated")

	return stats, nil
}
