package scheduler

import (
	"github.com/hanbit/shopfront-backend/internal/app/service"
	"github.com/hanbit/shopfront-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ReconcileScheduler periodically recomputes the aggregate store counters.
// The counters are maintained incrementally and can drift after out-of-band
// edits to the data file, so this is the standing recovery path.
type ReconcileScheduler struct {
	cron        *cron.Cron
	shopService service.ShopService
}

func NewReconcileScheduler(shopService service.ShopService) *ReconcileScheduler {
	return &ReconcileScheduler{
		cron:        cron.New(),
		shopService: shopService,
	}
}

// Start schedules the reconciliation at the top of every hour.
func (s *ReconcileScheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		logger.Debug("Starting scheduled stats reconciliation", nil)

		stats, err := s.shopService.ReconcileStats()
		if err != nil {
			logger.Error("Failed to reconcile stats from scheduler", err)
			return
		}

		logger.Debug("Stats reconciliation finished", map[string]interface{}{
			"total_shops": stats.TotalShops,
			"total_views": stats.TotalViews,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for stats reconciliation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stats reconciliation scheduler started (hourly)", nil)
	return nil
}

// Stop stops the scheduler.
func (s *ReconcileScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Stats reconciliation scheduler stopped", nil)
}
