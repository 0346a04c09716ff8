package services

import "tesis.link/models"

// Actor kimliği dış katmanda doğrulanmış, komutu çalıştıran kullanıcı.
// Global "aktif kullanıcı" durumu yoktur; her komut aktörünü parametre alır,
// yetkilendirme (aktör, varlık, işlem) üçlüsünün saf fonksiyonudur.
type Actor struct {
	UserID uint
	Role   models.UserRole
}

// Valid aktör kullanılabilir mi?
func (a Actor) Valid() bool {
	return a.UserID != 0 && models.ValidRole(a.Role)
}

// HasAnyRole aktör verilen rollerden birine sahip mi?
func (a Actor) HasAnyRole(roles ...models.UserRole) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// IsStaff aktör personel mi (sakin değil)?
func (a Actor) IsStaff() bool {
	return a.Role != models.RoleResident
}
