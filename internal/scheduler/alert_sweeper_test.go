package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeDispatcher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeDispatcher) DispatchDueAlerts(context.Context) (int, error) {
	f.calls.Add(1)
	return 1, f.err
}

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	return logger, &buf
}

func TestAlertSweeper_SweepsUntilCancelled(t *testing.T) {
	// Подготовка
	dispatcher := &fakeDispatcher{}
	logger, _ := newTestLogger()
	sweeper := NewAlertSweeper(dispatcher, 10*time.Millisecond, logger)
	ctx, cancel := context.WithCancel(context.Background())

	// Действие
	sweeper.Start(ctx)

	// Проверки
	assert.Eventually(t, func() bool {
		return dispatcher.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := dispatcher.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, dispatcher.calls.Load())
}

func TestAlertSweeper_LogsErrors(t *testing.T) {
	// Подготовка
	dispatcher := &fakeDispatcher{err: errors.New("db is down")}
	logger, buf := newTestLogger()
	sweeper := NewAlertSweeper(dispatcher, time.Hour, logger)

	// Действие
	sweeper.Sweep(context.Background())

	// Проверки
	assert.Equal(t, int32(1), dispatcher.calls.Load())
	assert.Contains(t, buf.String(), "Alert sweep finished with errors")
	assert.Contains(t, buf.String(), "db is down")
}
