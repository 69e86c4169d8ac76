package worker

import (
	"context"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker runs the periodic maintenance jobs: auto-completing bookings whose
// slot ended long ago and expiring lapsed subscriptions.
type Worker struct {
	log                 *zap.Logger
	cfg                 *config.InternalConfig
	locker              contracts.LockerService
	bookingRepository   contracts.BookingRepository
	subscriptionUsecase contracts.SubscriptionUsecase
	cron                *cron.Cron
	runCtx              context.Context
	cancel              context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	bookingRepository contracts.BookingRepository,
	subscriptionUsecase contracts.SubscriptionUsecase,
) *Worker {
	return &Worker{
		log:                 log,
		cfg:                 cfg,
		locker:              lockerSvc,
		bookingRepository:   bookingRepository,
		subscriptionUsecase: subscriptionUsecase,
	}
}

// Start schedules the worker loop. Stop cancels it.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and waits for a running job to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	// Only one instance may run the maintenance pass at a time.
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisWorkerLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisWorkerLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisWorkerLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	now := time.Now()
	w.autoCompleteBookings(ctx, now)
	w.expireSubscriptions(ctx, now)
}

// autoCompleteBookings marks accepted bookings as completed once the slot end
// plus the configured grace period has passed and the doctor never did it.
func (w *Worker) autoCompleteBookings(ctx context.Context, now time.Time) {
	grace := time.Duration(w.cfg.App.BookingAutoCompleteGraceInHour) * time.Hour
	cutoff := now.Add(-grace)

	bookingList, err := w.bookingRepository.FindAcceptedEndedBefore(ctx, cutoff)
	if err != nil {
		w.log.Warn("worker: failed to fetch overdue bookings", zap.Error(err))
		return
	}

	completed := 0
	for i := range bookingList {
		booking := &bookingList[i]
		// The date filter is day-granular; re-check the exact end timestamp.
		end, err := utils.SlotEnd(booking.Date, booking.EndTime)
		if err != nil {
			w.log.Warn("worker: booking has unparseable slot times",
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
			continue
		}
		if !end.Add(grace).Before(now) {
			continue
		}

		completedAt := now
		booking.Status = constvars.BookingStatusCompleted
		booking.CompletedAt = &completedAt
		if err := w.bookingRepository.UpdateBooking(ctx, booking); err != nil {
			w.log.Warn("worker: failed to auto-complete booking",
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
			continue
		}
		completed++
	}

	if completed > 0 {
		w.log.Info("worker: auto-completed overdue bookings", zap.Int(constvars.LoggingCountKey, completed))
	}
}

func (w *Worker) expireSubscriptions(ctx context.Context, now time.Time) {
	expired, err := w.subscriptionUsecase.ExpireOverdue(ctx, now)
	if err != nil {
		w.log.Warn("worker: subscription expiry pass failed", zap.Error(err))
		return
	}
	if expired > 0 {
		w.log.Info("worker: expired lapsed subscriptions", zap.Int(constvars.LoggingCountKey, expired))
	}
}
