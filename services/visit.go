package services

import (
	"context"
	"errors"
	"kucukaslan/timeapp/domain"
	"log"
	"sync/atomic"
)

var _ domain.VisitService = &visitService{}

type visitService struct {
	cache     domain.VisitCounterCache
	store     domain.UserStore
	recorder  domain.VisitRecorder
	analytics domain.VisitAnalytics

	// in-process counter used while Redis is unavailable; lost on restart
	memoryTotal atomic.Int64
}

// NewVisitService returns a domain.VisitService. recorder and analytics may be
// nil when visit analytics is disabled.
func NewVisitService(
	cache domain.VisitCounterCache,
	store domain.UserStore,
	recorder domain.VisitRecorder,
	analytics domain.VisitAnalytics,
) domain.VisitService {
	return &visitService{
		cache:     cache,
		store:     store,
		recorder:  recorder,
		analytics: analytics,
	}
}

// RecordVisit counts a visit in Redis, or in memory when Redis is not
// connected, adds it to the PostgreSQL total when connected and queues it for
// analytics.
func (v *visitService) RecordVisit(ctx context.Context, event domain.VisitEvent) error {
	if v.cache.Connected() {
		if _, err := v.cache.IncrVisits(ctx); err != nil {
			log.Printf("VisitService: Redis increment failed, counting in memory: %v", err)
			v.memoryTotal.Add(1)
		}
	} else {
		v.memoryTotal.Add(1)
	}

	if v.store.Connected() {
		if err := v.store.IncrementSiteCounter(ctx); err != nil {
			log.Printf("VisitService: PG increment failed: %v", err)
		}
	}

	if v.recorder != nil {
		if err := v.recorder.Enqueue(event); err != nil {
			log.Printf("VisitService: visit not queued for analytics: %v", err)
		}
	}
	return nil
}

// Total prefers the Redis counter, then the PostgreSQL total, then the
// in-process counter
func (v *visitService) Total(ctx context.Context) (int64, error) {
	if v.cache.Connected() {
		total, found, err := v.cache.GetVisits(ctx)
		if err != nil {
			log.Printf("VisitService: Redis read failed: %v", err)
		} else if found {
			return total, nil
		}
	}

	if v.store.Connected() {
		total, err := v.store.GetSiteCounter(ctx)
		if err == nil {
			return total, nil
		}
		log.Printf("VisitService: PG read failed: %v", err)
	}

	return v.memoryTotal.Load(), nil
}

func (v *visitService) Metrics(ctx context.Context, request *domain.VisitMetricRequest) ([]domain.VisitMetric, error) {
	if v.analytics == nil {
		return nil, domain.ErrAnalyticsDisabled
	}
	metrics, err := v.analytics.GetVisitMetrics(ctx, *request)
	if err != nil && !errors.Is(err, domain.ErrAnalyticsDisabled) {
		log.Printf("VisitService: metrics query failed: %v", err)
	}
	return metrics, err
}
