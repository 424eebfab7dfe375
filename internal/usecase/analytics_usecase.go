package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/analytics"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"

	"github.com/google/uuid"
)

type AnalyticsUsecase interface {
	GetAnalytics(ctx context.Context, userID uuid.UUID) (analytics.Data, error)
}

type Analytics struct {
	apps       repository.ApplicationRepository
	aggregator *analytics.Aggregator
	cache      Cache
	ttl        time.Duration
	logger     *log.Logger
}

func NewAnalyticsUsecase(apps repository.ApplicationRepository, agg *analytics.Aggregator, cache Cache, ttl time.Duration, logger *log.Logger) *Analytics {
	if logger == nil {
		logger = log.Default()
	}
	return &Analytics{apps: apps, aggregator: agg, cache: cache, ttl: ttl, logger: logger}
}

// GetAnalytics is cached per user until the next application write.
func (u *Analytics) GetAnalytics(ctx context.Context, userID uuid.UUID) (analytics.Data, error) {
	if userID == uuid.Nil {
		return analytics.Data{}, ErrUnauthorized
	}

	key := AnalyticsCacheKey(userID.String())
	if u.cache != nil {
		var cached analytics.Data
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			u.logger.Printf("[Cache] HIT: %s", key)
			return cached, nil
		}
	}

	start := time.Now()
	apps, err := u.apps.ListByUser(ctx, userID.String())
	if err != nil {
		u.logger.Printf("usecase=analytics status=error user_id=%s err=%v", userID, err)
		return analytics.Data{}, ErrInternal
	}
	data := u.aggregator.Aggregate(apps)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, data, u.ttl); err == nil {
			u.logger.Printf("[Cache] SET: %s", key)
		}
	}
	u.logger.Printf("usecase=analytics status=ok user_id=%s applications=%d duration=%s", userID, data.Total, time.Since(start))
	return data, nil
}
