package models

import "time"

// WorkSlotStatus bir vardiya kaydının durumunu tanımlar.
type WorkSlotStatus string

const (
	WorkSlotStatusNotStarted WorkSlotStatus = "not_started" // Vardiya henüz başlamadı
	WorkSlotStatusWorking    WorkSlotStatus = "working"     // Şu an görev başında
	WorkSlotStatusCompleted  WorkSlotStatus = "completed"   // Vardiya tamamlandı
	WorkSlotStatusOff        WorkSlotStatus = "off"         // İzinli / görev dışı
)

// ValidWorkSlotStatus bilinen bir vardiya durumu mu?
func ValidWorkSlotStatus(s WorkSlotStatus) bool {
	switch s {
	case WorkSlotStatusNotStarted, WorkSlotStatusWorking, WorkSlotStatusCompleted, WorkSlotStatusOff:
		return true
	}
	return false
}

// WorkSlot bir teknisyenin tek bir gün + vardiya için mesai taahhüdü.
// (technician_id, date, slot_id) üzerindeki unique index çift kayıt için
// son savunma hattıdır; uygulama ön kontrolü yalnızca optimizasyondur.
// Silme hard delete'tir, atama doğrulaması okuma anında yeniden yapılır.
type WorkSlot struct {
	BaseModel
	TechnicianID uint           `gorm:"not null;uniqueIndex:idx_workslot_tech_date_slot" json:"technician_id"`
	Date         time.Time      `gorm:"type:date;not null;uniqueIndex:idx_workslot_tech_date_slot;index" json:"date"`
	SlotID       uint           `gorm:"not null;uniqueIndex:idx_workslot_tech_date_slot" json:"slot_id"`
	Status       WorkSlotStatus `gorm:"type:varchar(20);not null;default:'not_started';index" json:"status"`

	Technician User `gorm:"foreignKey:TechnicianID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Slot       Slot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"slot"`
}

// Available bu vardiya kaydı atama adaylığına uygun mu? (off olmayan her durum)
func (ws *WorkSlot) Available() bool {
	return ws.Status != WorkSlotStatusOff
}

// DateOnly zamanın saat bileşenini sıfırlar; date sütunlarıyla karşılaştırma için.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
