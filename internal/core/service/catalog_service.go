package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

// CatalogService is the CRUD service behind one mock API collection.
type CatalogService[T domain.Entity[T], P domain.Input[T]] struct {
	name   string
	repo   ports.Repository[T]
	now    func() time.Time
	logger zerolog.Logger
}

func NewCatalogService[T domain.Entity[T], P domain.Input[T]](name string, repo ports.Repository[T], logger zerolog.Logger) *CatalogService[T, P] {
	return &CatalogService[T, P]{
		name:   name,
		repo:   repo,
		now:    time.Now,
		logger: logger.With().Str("collection", name).Logger(),
	}
}

func (s *CatalogService[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return items, nil
}

func (s *CatalogService[T, P]) Get(ctx context.Context, id int64) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *CatalogService[T, P]) Create(ctx context.Context, in P) (T, error) {
	var zero T
	item, err := s.repo.Insert(ctx, in.Apply(zero, s.stamp()))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create record")
		return zero, fmt.Errorf("create %s: %w", s.name, err)
	}

	s.logger.Info().Int64("id", item.Key()).Msg("record created")
	return item, nil
}

func (s *CatalogService[T, P]) Update(ctx context.Context, id int64, in P) (T, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	item, err := s.repo.Replace(ctx, in.Apply(current, s.stamp()).WithKey(id))
	if err != nil {
		var zero T
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to update record")
		return zero, fmt.Errorf("update %s %d: %w", s.name, id, err)
	}

	s.logger.Info().Int64("id", id).Msg("record updated")
	return item, nil
}

func (s *CatalogService[T, P]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("record deleted")
	return nil
}

func (s *CatalogService[T, P]) stamp() domain.Time {
	return domain.NewTime(s.now().UTC().Truncate(time.Second))
}
