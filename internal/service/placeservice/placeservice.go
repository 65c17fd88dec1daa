package placeservice

import (
	"context"
	"sort"

	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/pkg/geo"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Place, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Place, error)
}

type Service struct {
	placeRepo Repo
}

func New(placeRepo Repo) *Service {
	return &Service{
		placeRepo: placeRepo,
	}
}

// RankedPlace is a place annotated with its distance from the requested
// origin. DistanceKm is nil when the place has no coordinates or no origin
// was given.
type RankedPlace struct {
	domain.Place
	DistanceKm *float64
}

// List returns places, optionally filtered by category. When an origin is
// given the result is ordered nearest first; places without coordinates go
// last in their original order.
func (s *Service) List(ctx context.Context, category string, originLat, originLon *float64) ([]RankedPlace, error) {
	var places []domain.Place
	var err error
	if category != "" {
		places, err = s.placeRepo.FindByCategory(ctx, category)
	} else {
		places, err = s.placeRepo.FindAll(ctx)
	}
	if err != nil {
		zap.L().Error("failed to fetch places", zap.Error(err))
		return nil, err
	}

	if originLat != nil && originLon != nil {
		places = SortByDistance(places, *originLat, *originLon)
	}

	ranked := make([]RankedPlace, len(places))
	for i, place := range places {
		ranked[i] = RankedPlace{Place: place}
		if originLat != nil && originLon != nil && place.Latitude != nil && place.Longitude != nil {
			d := geo.Distance(*originLat, *originLon, *place.Latitude, *place.Longitude)
			ranked[i].DistanceKm = &d
		}
	}
	return ranked, nil
}

// SortByDistance orders places by distance from the origin, ascending. The
// sort is stable and places lacking coordinates keep their relative order at
// the end.
func SortByDistance(places []domain.Place, lat, lon float64) []domain.Place {
	sorted := make([]domain.Place, len(places))
	copy(sorted, places)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := distanceFrom(sorted[i], lat, lon)
		dj, jok := distanceFrom(sorted[j], lat, lon)
		if !iok {
			return false
		}
		if !jok {
			return true
		}
		return di < dj
	})
	return sorted
}

func distanceFrom(place domain.Place, lat, lon float64) (float64, bool) {
	if place.Latitude == nil || place.Longitude == nil {
		return 0, false
	}
	return geo.Distance(lat, lon, *place.Latitude, *place.Longitude), true
}
