package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfKnownErrors(t *testing.T) {
	assert.Equal(t, "REQUEST_NOT_FOUND", CodeOf(ErrRequestNotFound))
	assert.Equal(t, "FORBIDDEN", CodeOf(ErrForbidden))
	assert.Equal(t, "INVALID_TRANSITION", CodeOf(ErrInvalidTransition))
	assert.Equal(t, "DUPLICATE_SLOT", CodeOf(ErrDuplicateSlot))
	assert.Equal(t, "TECHNICIAN_ALREADY_ASSIGNED", CodeOf(ErrTechnicianAlreadyAssigned))
	assert.Equal(t, "SLOT_CONFLICT", CodeOf(ErrSlotConflict))
	assert.Equal(t, "CONFLICTING_APPOINTMENT_EXISTS", CodeOf(ErrConflictingAppointmentExists))
}

func TestCodeOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("kayıt güncellenemedi: %w", ErrAppointmentClosed)
	assert.Equal(t, "APPOINTMENT_CLOSED", CodeOf(wrapped))
}

func TestCodeOfUnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, "INTERNAL", CodeOf(errors.New("beklenmeyen hata")))
	assert.Equal(t, "INTERNAL", CodeOf(nil))
}

func TestEveryServiceErrorHasCode(t *testing.T) {
	all := []ServiceError{
		ErrRequestNotFound, ErrAppointmentNotFound, ErrAssignmentNotFound,
		ErrWorkSlotNotFound, ErrSlotNotFound, ErrTechniqueNotFound, ErrUserNotFound,
		ErrForbidden, ErrInvalidInput, ErrInvalidCredentials, ErrInvalidTransition,
		ErrInvalidTimeRange, ErrRequestNotApproved, ErrAppointmentClosed,
		ErrWorkSlotNotAvailable, ErrDuplicateSlot, ErrTechnicianAlreadyAssigned,
		ErrSlotConflict, ErrConflictingAppointmentExists, ErrTechniqueAlreadyGranted,
	}
	for _, err := range all {
		assert.NotEqual(t, "INTERNAL", CodeOf(err), "%s için kod tanımlı olmalı", err)
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrRequestNotFound))
	assert.True(t, IsNotFound(ErrWorkSlotNotFound))
	assert.False(t, IsNotFound(ErrForbidden))
	assert.False(t, IsNotFound(errors.New("başka hata")))
}
