package overdue_deliveries

import (
	"context"
	"time"

	"logistics/internal/pkg/metrics"
	"logistics/pkg/logger"
)

type Service interface {
	CountOverdueDeliveries(ctx context.Context) (int64, error)
}

// OverdueDeliveries периодически пересчитывает выданные, но так и не
// вручённые доставки и публикует счётчик в метрику.
type OverdueDeliveries struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOverdueDeliveries(log logger.Logger, service Service, interval time.Duration) *OverdueDeliveries {
	return &OverdueDeliveries{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OverdueDeliveries) TTL() time.Duration {
	return o.interval
}

func (o *OverdueDeliveries) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.CountOverdueDeliveries(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.OverdueDeliveries.Set(float64(count))

	if count > 0 {
		o.log.With(
			logger.NewField("overdue_deliveries", count),
		).Warn("overdue deliveries monitor")
	}

	return nil
}

func (o *OverdueDeliveries) Info() string {
	return "overdue deliveries monitor"
}
