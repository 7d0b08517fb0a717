package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Worker - обработчик очереди уведомлений: отправляет письма и дублирует события во внешний вебхук
type Worker struct {
	redisClient *redis.Client
	mailer      Mailer
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *resty.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, mailer Mailer, logger *logrus.Logger, cfg *config.Config) *Worker {
	httpClient := resty.New().
		SetTimeout(cfg.WebhookTimeout).
		SetRetryCount(cfg.WebhookMaxRetries).
		SetRetryWaitTime(cfg.WebhookBaseDelay).
		SetRetryMaxWaitTime(cfg.WebhookBaseDelay * 8).
		SetHeader("Content-Type", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500 || r.StatusCode() == 429
		})

	return &Worker{
		redisClient: redisClient,
		mailer:      mailer,
		logger:      logger,
		cfg:         cfg,
		httpClient:  httpClient,
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop notification from Redis")
					w.sleep(ctx, w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				if err := w.Handle(ctx, result[1]); err != nil {
					w.logger.WithError(err).Error("Failed to handle notification")
				}
			}
		}
	}()
}

// Handle обрабатывает одно сообщение из очереди
func (w *Worker) Handle(ctx context.Context, payload string) error {
	var n Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		metrics.NotificationsTotal.WithLabelValues("unknown", "malformed").Inc()
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	log := w.logger.WithFields(logrus.Fields{
		"kind": n.Kind,
		"to":   n.To,
	})
	log.Debug("Processing notification...")

	if err := w.deliverEmail(ctx, n, log); err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "failed").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "sent").Inc()

	if err := w.deliverWebhook(ctx, payload, log); err != nil {
		// Письмо уже отправлено, ошибка вебхука не повторяет рассылку
		log.WithError(err).Error("Failed to deliver webhook")
	}
	return nil
}

func (w *Worker) deliverEmail(ctx context.Context, n Notification, log *logrus.Entry) error {
	if n.To == "" {
		log.Warn("Notification has no recipient. Skipping email delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lastErr = w.mailer.Send(ctx, n)
		if lastErr == nil {
			log.Info("Email delivered successfully.")
			return nil
		}
		if i == maxRetries-1 {
			break
		}
		log.WithError(lastErr).Warnf("Failed to send email. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if !w.sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2 // Экспоненциальная задержка
	}

	return fmt.Errorf("failed to deliver email after %d attempts: %w", maxRetries, lastErr)
}

func (w *Worker) deliverWebhook(ctx context.Context, payload string, log *logrus.Entry) error {
	if w.cfg.WebhookURL == "" {
		return nil
	}

	req := w.httpClient.R().
		SetContext(ctx).
		SetBody(payload)

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.SetHeader("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := req.Post(w.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode())
	}

	log.Debug("Webhook delivered successfully.")
	return nil
}

// sleep ждет d или отмены контекста; false - контекст отменен
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
