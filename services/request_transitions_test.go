package services

import (
	"testing"

	"tesis.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTableDefined(t *testing.T) {
	// Ana akış geçişleri tanımlı olmalı.
	assert.True(t, TransitionDefined(models.RequestStatusPending, models.RequestStatusApproved))
	assert.True(t, TransitionDefined(models.RequestStatusApproved, models.RequestStatusInProgress))
	assert.True(t, TransitionDefined(models.RequestStatusInProgress, models.RequestStatusDiagnosed))
	assert.True(t, TransitionDefined(models.RequestStatusDiagnosed, models.RequestStatusCompletedPendingVerify))
	assert.True(t, TransitionDefined(models.RequestStatusInProgress, models.RequestStatusCompletedPendingVerify))
	assert.True(t, TransitionDefined(models.RequestStatusCompletedPendingVerify, models.RequestStatusAcceptancePendingVerify))
	assert.True(t, TransitionDefined(models.RequestStatusAcceptancePendingVerify, models.RequestStatusCompleted))

	// Atlama ve geri gitme tanımsız olmalı.
	assert.False(t, TransitionDefined(models.RequestStatusPending, models.RequestStatusInProgress))
	assert.False(t, TransitionDefined(models.RequestStatusApproved, models.RequestStatusCompleted))
	assert.False(t, TransitionDefined(models.RequestStatusCompleted, models.RequestStatusPending))
	assert.False(t, TransitionDefined(models.RequestStatusDiagnosed, models.RequestStatusApproved))
}

func TestCancelRejectFromEveryNonTerminalStatus(t *testing.T) {
	for _, from := range nonTerminalRequestStatuses {
		assert.True(t, TransitionDefined(from, models.RequestStatusCancelled),
			"cancelled geçişi %s durumundan tanımlı olmalı", from)
		assert.True(t, TransitionDefined(from, models.RequestStatusRejected),
			"rejected geçişi %s durumundan tanımlı olmalı", from)
	}
}

func TestTerminalStatusesHaveNoOutgoingTransitions(t *testing.T) {
	terminals := []models.RequestStatus{
		models.RequestStatusCompleted,
		models.RequestStatusCancelled,
		models.RequestStatusRejected,
	}
	for _, from := range terminals {
		require.True(t, from.Terminal())
		for _, to := range allRequestStatuses {
			assert.False(t, TransitionDefined(from, to),
				"%s -> %s geçişi tanımlı olmamalı", from, to)
		}
	}
}

func TestTransitionAllowedByRole(t *testing.T) {
	// Onayı sakin veremez, resepsiyon ve yönetim verebilir.
	assert.False(t, TransitionAllowed(models.RequestStatusPending, models.RequestStatusApproved, models.RoleResident))
	assert.True(t, TransitionAllowed(models.RequestStatusPending, models.RequestStatusApproved, models.RoleReceptionist))
	assert.True(t, TransitionAllowed(models.RequestStatusPending, models.RequestStatusApproved, models.RoleManager))

	// Teşhisi yalnızca teknisyen yapar.
	assert.True(t, TransitionAllowed(models.RequestStatusInProgress, models.RequestStatusDiagnosed, models.RoleTechnician))
	assert.False(t, TransitionAllowed(models.RequestStatusInProgress, models.RequestStatusDiagnosed, models.RoleManager))

	// Son kabulü sakin veya resepsiyon yapar, şef yapamaz.
	assert.True(t, TransitionAllowed(models.RequestStatusAcceptancePendingVerify, models.RequestStatusCompleted, models.RoleResident))
	assert.False(t, TransitionAllowed(models.RequestStatusAcceptancePendingVerify, models.RequestStatusCompleted, models.RoleTechnicianLead))

	// İptal sakine açık, ret değil.
	assert.True(t, TransitionAllowed(models.RequestStatusPending, models.RequestStatusCancelled, models.RoleResident))
	assert.False(t, TransitionAllowed(models.RequestStatusPending, models.RequestStatusRejected, models.RoleResident))

	// Tanımsız geçişte hiçbir rol yetkili değildir.
	assert.False(t, TransitionAllowed(models.RequestStatusCompleted, models.RequestStatusPending, models.RoleManager))
}

func TestTransitionAllowedRolesMatchesTable(t *testing.T) {
	roles := TransitionAllowedRoles(models.RequestStatusPending, models.RequestStatusApproved)
	assert.ElementsMatch(t, []models.UserRole{
		models.RoleReceptionist, models.RoleTechnicianLead, models.RoleManager,
	}, roles)

	assert.Empty(t, TransitionAllowedRoles(models.RequestStatusCompleted, models.RequestStatusCancelled))
}
