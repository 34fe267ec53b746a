package service

import (
	"context"
	"time"

	"rentfit-reservations/internal/cache"
	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

type availabilityService struct {
	intervals  repository.IntervalRepository
	availCache *cache.AvailabilityCache
}

// NewAvailabilityService builds the read-side index over committed
// intervals. availCache may be nil; reads then go straight to the store.
func NewAvailabilityService(intervals repository.IntervalRepository, availCache *cache.AvailabilityCache) AvailabilityService {
	return &availabilityService{
		intervals:  intervals,
		availCache: availCache,
	}
}

func (s *availabilityService) UnavailableRanges(ctx context.Context, itemID int64, from, to *time.Time) ([]domain.Interval, error) {
	occupied, err := s.occupied(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if from == nil && to == nil {
		return occupied, nil
	}

	var filtered []domain.Interval
	for _, iv := range occupied {
		if from != nil && iv.End.Before(*from) {
			continue
		}
		if to != nil && iv.Start.After(*to) {
			continue
		}
		filtered = append(filtered, iv)
	}
	return filtered, nil
}

func (s *availabilityService) IsAvailable(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	occupied, err := s.occupied(ctx, itemID)
	if err != nil {
		return false, err
	}
	for _, iv := range occupied {
		if iv.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

// occupied serves the snapshot, preferring the cache when configured.
func (s *availabilityService) occupied(ctx context.Context, itemID int64) ([]domain.Interval, error) {
	if s.availCache != nil {
		if intervals, ok := s.availCache.GetOccupied(ctx, itemID); ok {
			return intervals, nil
		}
	}

	intervals, err := s.intervals.ListOccupied(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if s.availCache != nil {
		s.availCache.SetOccupied(ctx, itemID, intervals)
	}
	return intervals, nil
}
