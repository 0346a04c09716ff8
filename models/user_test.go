package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Vardiya tutabilen her rol atama adayı da olabilmeli: IsTechnician ile
// TechnicianRoles aynı kümeyi tanımlar.
func TestIsTechnicianMatchesTechnicianRoles(t *testing.T) {
	for _, role := range TechnicianRoles {
		user := User{Role: role}
		assert.True(t, user.IsTechnician(), "rol %s teknisyen sayılmalı", role)
	}

	for _, role := range []UserRole{RoleResident, RoleReceptionist, RoleManager} {
		user := User{Role: role}
		assert.False(t, user.IsTechnician(), "rol %s teknisyen sayılmamalı", role)
	}
}

func TestTechnicianRolesIncludeLead(t *testing.T) {
	assert.Contains(t, TechnicianRoles, RoleTechnicianLead)
	assert.Contains(t, TechnicianRoles, RoleTechnician)
}
