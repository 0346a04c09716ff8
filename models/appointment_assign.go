package models

import "time"

// AppointmentAssign bir teknisyeni bir randevuya bağlar.
// (appointment_id, user_id) üzerindeki unique index yarışan atamalarda son
// savunma hattıdır; ihlal servis katmanında alan hatasına çevrilir.
// Atama iptali satırı fiziksel olarak kaldırır (Unscoped).
type AppointmentAssign struct {
	BaseModel
	AppointmentID uint      `gorm:"not null;uniqueIndex:idx_assign_appt_user" json:"appointment_id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_assign_appt_user;index" json:"user_id"`
	AssignedAt    time.Time `gorm:"not null" json:"assigned_at"`
	IsConfirmed   bool      `gorm:"default:false" json:"is_confirmed"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User        User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}
