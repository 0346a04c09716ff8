package models

// UserRole sistemdeki rolleri tanımlar. Yetkilendirme tamamen bu role
// ve (gerektiğinde) kayıt sahipliğine bakar.
type UserRole string

const (
	RoleResident       UserRole = "resident"        // Site sakini
	RoleReceptionist   UserRole = "receptionist"    // Resepsiyon / çağrı kaydı
	RoleTechnician     UserRole = "technician"      // Saha teknisyeni
	RoleTechnicianLead UserRole = "technician_lead" // Teknisyen şefi (planlama)
	RoleManager        UserRole = "manager"         // Tesis yöneticisi
)

// ValidRole bilinen bir rol mü?
func ValidRole(r UserRole) bool {
	switch r {
	case RoleResident, RoleReceptionist, RoleTechnician, RoleTechnicianLead, RoleManager:
		return true
	}
	return false
}

// User kimliği doğrulanmış aktör. Kimlik doğrulama dış katmanın işi;
// çekirdek yalnızca ID + Role üzerinden yetkilendirir.
type User struct {
	BaseModel
	FullName     string   `gorm:"type:varchar(150);not null" json:"full_name"`
	Email        string   `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Phone        string   `gorm:"type:varchar(30)" json:"phone"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(30);not null;index" json:"role"`
	ApartmentID  *uint    `gorm:"index" json:"apartment_id,omitempty"` // Sakinler için dairesi
	IsActive     bool     `gorm:"default:true;index" json:"is_active"`
	IsSystem     bool     `gorm:"default:false" json:"-"` // Seed edilen sistem kullanıcısı

	// İlişkiler
	Techniques []Technique `gorm:"many2many:technician_techniques;" json:"techniques,omitempty"`
}

// TechnicianRoles saha görevi üstlenebilen roller. Vardiya takvimi ve atama
// aday havuzu aynı listeyi kullanır: vardiyası olan herkes atanabilir.
var TechnicianRoles = []UserRole{RoleTechnician, RoleTechnicianLead}

// IsTechnician kullanıcının teknisyen kapasitesi var mı?
func (u *User) IsTechnician() bool {
	for _, role := range TechnicianRoles {
		if u.Role == role {
			return true
		}
	}
	return false
}
