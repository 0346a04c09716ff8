package services

import (
	"testing"
	"time"

	"tesis.link/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppointmentWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)
	futureEnd := future.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.NoError(t, ValidateAppointmentWindow(future, nil, now))
	assert.NoError(t, ValidateAppointmentWindow(future, &futureEnd, now))
	// Başlangıç anı tam şimdi ise kabul edilir.
	assert.NoError(t, ValidateAppointmentWindow(now, nil, now))

	assert.ErrorIs(t, ValidateAppointmentWindow(past, nil, now), ErrInvalidTimeRange)

	before := future.Add(-time.Minute)
	assert.ErrorIs(t, ValidateAppointmentWindow(future, &before, now), ErrInvalidTimeRange)
}

func TestAppointmentTransitionTable(t *testing.T) {
	// İleri akış.
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusAssigned, models.AppointmentStatusConfirmed))
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusAssigned, models.AppointmentStatusInProgress))
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusConfirmed, models.AppointmentStatusInProgress))
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusInProgress, models.AppointmentStatusCompleted))

	// Onay geri alınabilir.
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusConfirmed, models.AppointmentStatusAssigned))

	// Terminal olmayan her durumdan iptal mümkün.
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusPending, models.AppointmentStatusCancelled))
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusAssigned, models.AppointmentStatusCancelled))
	assert.True(t, appointmentTransitionAllowed(models.AppointmentStatusInProgress, models.AppointmentStatusCancelled))

	// Atanmadan başlatılamaz, terminalden çıkılamaz.
	assert.False(t, appointmentTransitionAllowed(models.AppointmentStatusPending, models.AppointmentStatusInProgress))
	assert.False(t, appointmentTransitionAllowed(models.AppointmentStatusPending, models.AppointmentStatusCompleted))
	assert.False(t, appointmentTransitionAllowed(models.AppointmentStatusCompleted, models.AppointmentStatusInProgress))
	assert.False(t, appointmentTransitionAllowed(models.AppointmentStatusCancelled, models.AppointmentStatusPending))
}
