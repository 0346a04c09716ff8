package services

import (
	"context"

	"tesis.link/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationEvent durum değişikliklerinde bildirim işbirlikçisine gönderilen olay.
// Teslimat ve format işbirlikçinin sorumluluğudur; çekirdek yalnızca olayı üretir.
type NotificationEvent struct {
	EventID         string `json:"event_id"`
	EntityType      string `json:"entity_type"` // "repair_request" | "appointment" | "work_slot"
	EntityID        uint   `json:"entity_id"`
	NewStatus       string `json:"new_status"`
	AffectedUserIDs []uint `json:"affected_user_ids"`
}

// NewNotificationEvent benzersiz olay kimliğiyle olay oluşturur.
func NewNotificationEvent(entityType string, entityID uint, newStatus string, affected []uint) NotificationEvent {
	return NotificationEvent{
		EventID:         uuid.NewString(),
		EntityType:      entityType,
		EntityID:        entityID,
		NewStatus:       newStatus,
		AffectedUserIDs: affected,
	}
}

// INotifier bildirim işbirlikçisinin çekirdek tarafındaki arayüzü.
type INotifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}

// LogNotifier olayları yalnızca loglayan varsayılan implementasyon.
// Push/e-posta entegrasyonu dış modülde bu arayüzü sağlar.
type LogNotifier struct{}

func NewLogNotifier() INotifier { return &LogNotifier{} }

func (n *LogNotifier) Notify(_ context.Context, event NotificationEvent) error {
	configslog.Log.Info("Bildirim olayı yayınlandı",
		zap.String("event_id", event.EventID),
		zap.String("entity_type", event.EntityType),
		zap.Uint("entity_id", event.EntityID),
		zap.String("new_status", event.NewStatus),
		zap.Uints("affected_user_ids", event.AffectedUserIDs),
	)
	return nil
}

// dispatchNotification bildirimi gönderir; hata commit edilmiş işlemi geri
// almaz, yalnızca loglanır.
func dispatchNotification(ctx context.Context, notifier INotifier, event NotificationEvent) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, event); err != nil {
		configslog.Log.Warn("Bildirim gönderilemedi (işlem etkilenmedi)",
			zap.String("event_id", event.EventID),
			zap.String("entity_type", event.EntityType),
			zap.Uint("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}

var _ INotifier = (*LogNotifier)(nil)
