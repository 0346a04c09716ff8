package models

import "time"

// RequestStatus arıza/bakım kaydının yaşam döngüsü durumları.
type RequestStatus string

const (
	RequestStatusPending                 RequestStatus = "pending"                   // Kayıt açıldı, onay bekliyor
	RequestStatusApproved                RequestStatus = "approved"                  // Onaylandı, randevu planlanabilir
	RequestStatusInProgress              RequestStatus = "in_progress"               // Teknisyen çalışmaya başladı
	RequestStatusDiagnosed               RequestStatus = "diagnosed"                 // Teşhis kondu
	RequestStatusCompletedPendingVerify  RequestStatus = "completed_pending_verify"  // İş bitti, şef kontrolü bekliyor
	RequestStatusAcceptancePendingVerify RequestStatus = "acceptance_pending_verify" // Sakin onayı bekliyor
	RequestStatusCompleted               RequestStatus = "completed"                 // Kapandı
	RequestStatusCancelled               RequestStatus = "cancelled"                 // İptal edildi
	RequestStatusRejected                RequestStatus = "rejected"                  // Reddedildi
)

// Terminal bu durumdan çıkış yok mu?
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled || s == RequestStatusRejected
}

// RepairRequest bir arıza veya planlı bakım iş kaydı.
// Tam olarak ApartmentID XOR CommonAreaID dolu olmalıdır. Kayıt hiçbir zaman
// hard delete edilmez; kapanış yalnızca terminal durumlarla olur.
type RepairRequest struct {
	BaseModel
	RequesterID           uint          `gorm:"not null;index" json:"requester_id"`
	ApartmentID           *uint         `gorm:"index" json:"apartment_id,omitempty"`   // Daire hedefi (ortak alan ile karşılıklı dışlayıcı)
	CommonAreaID          *uint         `gorm:"index" json:"common_area_id,omitempty"` // Ortak alan hedefi
	ParentRequestID       *uint         `gorm:"index" json:"parent_request_id,omitempty"`
	MaintenanceScheduleID *uint         `gorm:"index" json:"maintenance_schedule_id,omitempty"` // Periyodik bakım planı referansı (dış modül)
	TechniqueID           *uint         `gorm:"index" json:"technique_id,omitempty"`
	IsEmergency           bool          `gorm:"default:false;index" json:"is_emergency"`
	Subject               string        `gorm:"type:varchar(200);not null" json:"subject"`
	Description           string        `gorm:"type:text" json:"description"`
	Status                RequestStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	AcceptedAt            *time.Time    `json:"accepted_at,omitempty"` // Onay anı

	Requester     User           `gorm:"foreignKey:RequesterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Technique     *Technique     `gorm:"foreignKey:TechniqueID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technique,omitempty"`
	ParentRequest *RepairRequest `gorm:"foreignKey:ParentRequestID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:RequestID" json:"appointments,omitempty"`
}
