package models

import "time"

// AppointmentStatus randevunun durumu. Kayıt durumundan bağımsız tutulur,
// geçişler servis katmanında ilişkilendirilir.
type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"     // Oluşturuldu, teknisyen atanmadı
	AppointmentStatusAssigned   AppointmentStatus = "assigned"    // Teknisyen(ler) atandı
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"   // Atamalar onaylandı
	AppointmentStatusInProgress AppointmentStatus = "in_progress" // Çalışma başladı
	AppointmentStatusCompleted  AppointmentStatus = "completed"   // Çalışma bitti
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"   // İptal edildi
)

// Terminal randevu kapalı mı?
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment bir arıza kaydına bağlı planlanmış çalışma seansı.
// Bir kayıt için aynı anda en fazla bir aktif (terminal olmayan) randevu
// bulunabilir; takip randevuları yeni satır olarak açılır.
type Appointment struct {
	BaseModel
	RequestID uint              `gorm:"not null;index" json:"request_id"`
	StartTime time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime   *time.Time        `json:"end_time,omitempty"`
	Note      string            `gorm:"type:text" json:"note"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Request RepairRequest       `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Assigns []AppointmentAssign `gorm:"foreignKey:AppointmentID" json:"assigns,omitempty"`
}

// WindowWithin randevunun çakışma kontrolünde kullanılacak zaman penceresi.
// Bitiş verilmemişse randevu, kapsayan vardiyanın kalanını işgal eder.
func (a *Appointment) WindowWithin(slot Slot) (time.Time, time.Time) {
	if a.EndTime != nil {
		return a.StartTime, *a.EndTime
	}
	_, slotEnd := slot.WindowOn(a.StartTime)
	return a.StartTime, slotEnd
}
