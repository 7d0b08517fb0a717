// Package scheduler запускает периодические фоновые задачи.
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Dispatcher рассылает оповещения, срок отправки которых наступил
type Dispatcher interface {
	DispatchDueAlerts(ctx context.Context) (int, error)
}

// AlertSweeper периодически рассылает запланированные оповещения.
// Переживает рестарт: состояние хранится в бд, а не в таймерах процесса.
type AlertSweeper struct {
	dispatcher Dispatcher
	interval   time.Duration
	logger     *logrus.Logger
}

func NewAlertSweeper(dispatcher Dispatcher, interval time.Duration, logger *logrus.Logger) *AlertSweeper {
	return &AlertSweeper{
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
	}
}

// Start запускает горутину. Первый проход выполняется сразу, чтобы разослать пропущенное за время простоя.
func (s *AlertSweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval).Info("Starting alert sweeper...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping alert sweeper.")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep выполняет один проход
func (s *AlertSweeper) Sweep(ctx context.Context) {
	n, err := s.dispatcher.DispatchDueAlerts(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("dispatched", n).Error("Alert sweep finished with errors")
		return
	}
	if n > 0 {
		s.logger.WithField("dispatched", n).Info("Due alerts dispatched")
	}
}
