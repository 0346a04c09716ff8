package models

// İzleme tabloları append-only'dir: satırlar yalnızca eklenir, güncelleme ve
// silme yoktur. Her durum geçişi, geçişi yapan işlemle aynı transaction
// içinde tam bir satır üretir.

// RequestTracking arıza kaydı durum geçişlerinin tarihçesi.
type RequestTracking struct {
	BaseModel
	RequestID uint   `gorm:"not null;index" json:"request_id"`
	OldStatus string `gorm:"type:varchar(30);not null" json:"old_status"`
	NewStatus string `gorm:"type:varchar(30);not null" json:"new_status"`
	ActorID   uint   `gorm:"not null;index" json:"actor_id"`
	Note      string `gorm:"type:text" json:"note"`

	Request RepairRequest `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// AppointmentTracking randevu durum/atama geçişlerinin tarihçesi.
type AppointmentTracking struct {
	BaseModel
	AppointmentID uint   `gorm:"not null;index" json:"appointment_id"`
	OldStatus     string `gorm:"type:varchar(30);not null" json:"old_status"`
	NewStatus     string `gorm:"type:varchar(30);not null" json:"new_status"`
	ActorID       uint   `gorm:"not null;index" json:"actor_id"`
	Note          string `gorm:"type:text" json:"note"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// WorkSlotStatusTracking vardiya durum geçişlerinin tarihçesi.
// WorkSlot hard delete edildiğinde tarihçe satırları kalır (FK yok, yalın ID).
type WorkSlotStatusTracking struct {
	BaseModel
	WorkSlotID   uint   `gorm:"not null;index" json:"work_slot_id"`
	TechnicianID uint   `gorm:"not null;index" json:"technician_id"`
	OldStatus    string `gorm:"type:varchar(30);not null" json:"old_status"`
	NewStatus    string `gorm:"type:varchar(30);not null" json:"new_status"`
	ActorID      uint   `gorm:"not null;index" json:"actor_id"`
	Note         string `gorm:"type:text" json:"note"`
}
