package catalog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/tassuhoiva/booking-api/internal/model"
	"github.com/tassuhoiva/booking-api/internal/repository"
)

const cacheKey = "services"

// Service loads the bookable catalog from the remote store, normalizes it and
// caches the result. It never fails: any fetch problem degrades to the
// default catalog so the booking flow is never blocked on catalog data.
type Service struct {
	repo  repository.ServiceRepository
	cache *cache.Cache
}

func NewService(repo repository.ServiceRepository, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// List returns the normalized catalog. Remote failures are logged and
// absorbed; the error return exists only to satisfy callers that treat the
// catalog like other fetches and is always nil.
func (s *Service) List(ctx context.Context) ([]model.Service, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]model.Service), nil
	}

	raw, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog fetch failed, serving default catalog")
		return DefaultCatalog(), nil
	}

	services := Normalize(raw)
	s.cache.Set(cacheKey, services, cache.DefaultExpiration)
	return services, nil
}

// Get returns a single service by id, or nil if the id is unknown.
func (s *Service) Get(ctx context.Context, id string) (*model.Service, error) {
	services, _ := s.List(ctx)
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}
