package models

import "time"

// Technique beceri/uzmanlık kataloğu (ör. elektrik, sıhhi tesisat, asansör).
// Bir arıza kaydı opsiyonel olarak bir teknik gerektirir; atama motoru
// adayları bu tekniğe sahip teknisyenlere daraltır.
type Technique struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`
}

// Temel teknik adları (seed edilir).
const (
	TechniqueNameElectrical = "ELEKTRIK"
	TechniqueNamePlumbing   = "SIHHI_TESISAT"
	TechniqueNameHVAC       = "ISITMA_SOGUTMA"
	TechniqueNameElevator   = "ASANSOR"
	TechniqueNameCarpentry  = "MARANGOZLUK"
	TechniqueNamePainting   = "BOYA_BADANA"
)

// TechnicianTechnique teknisyen-teknik many-to-many bağını tutar.
// (user_id, technique_id) üzerinde unique index: aynı beceri iki kez verilemez.
type TechnicianTechnique struct {
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	TechniqueID uint      `gorm:"primaryKey" json:"technique_id"`
	GrantedAt   time.Time `gorm:"autoCreateTime" json:"granted_at"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Technique Technique `gorm:"foreignKey:TechniqueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
