package models

import (
	"context"
	"time"
)

// RecipientType - кому адресовано оповещение
type RecipientType string

const (
	RecipientEmployee   RecipientType = "employee"
	RecipientDepartment RecipientType = "department"
)

// DeliveryStatus - состояние рассылки оповещения
type DeliveryStatus string

const (
	DeliveryScheduled  DeliveryStatus = "scheduled"
	DeliveryDispatched DeliveryStatus = "dispatched"
)

// AlertHandler обрабатывает оповещение, захваченное для рассылки
type AlertHandler func(ctx context.Context, alert *Alert) error

type Alert struct {
	AlertID        string         `json:"alertID"`
	AlertName      string         `json:"alertName"`
	CompanyID      int            `json:"companyID"`
	SentAt         time.Time      `json:"sentAt"`
	Description    string         `json:"description"`
	Type           string         `json:"type"`
	RecipientType  RecipientType  `json:"recipientType"`
	Recipients     []string       `json:"recipients"`
	CC             string         `json:"cc,omitempty"`
	Attachments    []string       `json:"attachments"`
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
	DispatchedAt   *time.Time     `json:"dispatchedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`

	// Неудачные попытки рассылки; оповещения без попыток забираются первыми
	DispatchAttempts int        `json:"dispatchAttempts"`
	LastAttemptAt    *time.Time `json:"lastAttemptAt,omitempty"`
}

// AlertUpdate - изменения запланированного оповещения
type AlertUpdate struct {
	AlertName          *string
	Description        *string
	CC                 *string
	SentAt             *time.Time
	RemovedAttachments []string
	AddedAttachments   []string
}

// IsEmpty сообщает, что ни одно поле не задано
func (u AlertUpdate) IsEmpty() bool {
	return u.AlertName == nil && u.Description == nil && u.CC == nil && u.SentAt == nil &&
		len(u.RemovedAttachments) == 0 && len(u.AddedAttachments) == 0
}

// Apply переносит изменения в оповещение. Удаленные вложения убираются, новые добавляются без повторов.
func (u AlertUpdate) Apply(a *Alert) {
	if u.AlertName != nil {
		a.AlertName = *u.AlertName
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.CC != nil {
		a.CC = *u.CC
	}
	if u.SentAt != nil {
		a.SentAt = *u.SentAt
	}

	removed := make(map[string]struct{}, len(u.RemovedAttachments))
	for _, url := range u.RemovedAttachments {
		removed[url] = struct{}{}
	}
	seen := make(map[string]struct{})
	attachments := make([]string, 0, len(a.Attachments)+len(u.AddedAttachments))
	for _, url := range append(append([]string{}, a.Attachments...), u.AddedAttachments...) {
		if _, drop := removed[url]; drop {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		attachments = append(attachments, url)
	}
	a.Attachments = attachments
}
