package services

import (
	"testing"

	"tesis.link/models"

	"github.com/stretchr/testify/assert"
)

func TestWorkSlotTransitionAllowed(t *testing.T) {
	// Normal mesai akışı.
	assert.True(t, WorkSlotTransitionAllowed(models.WorkSlotStatusNotStarted, models.WorkSlotStatusWorking))
	assert.True(t, WorkSlotTransitionAllowed(models.WorkSlotStatusWorking, models.WorkSlotStatusCompleted))

	// İzne ayrılma ve izinden dönme.
	assert.True(t, WorkSlotTransitionAllowed(models.WorkSlotStatusNotStarted, models.WorkSlotStatusOff))
	assert.True(t, WorkSlotTransitionAllowed(models.WorkSlotStatusWorking, models.WorkSlotStatusOff))
	assert.True(t, WorkSlotTransitionAllowed(models.WorkSlotStatusOff, models.WorkSlotStatusNotStarted))

	// Adım atlamak ve geri dönmek yasak.
	assert.False(t, WorkSlotTransitionAllowed(models.WorkSlotStatusNotStarted, models.WorkSlotStatusCompleted))
	assert.False(t, WorkSlotTransitionAllowed(models.WorkSlotStatusCompleted, models.WorkSlotStatusWorking))
	assert.False(t, WorkSlotTransitionAllowed(models.WorkSlotStatusCompleted, models.WorkSlotStatusNotStarted))
	assert.False(t, WorkSlotTransitionAllowed(models.WorkSlotStatusOff, models.WorkSlotStatusWorking))
}

func TestWorkSlotAvailability(t *testing.T) {
	for _, status := range []models.WorkSlotStatus{
		models.WorkSlotStatusNotStarted,
		models.WorkSlotStatusWorking,
		models.WorkSlotStatusCompleted,
	} {
		ws := models.WorkSlot{Status: status}
		assert.True(t, ws.Available(), "%s durumu atamaya uygun olmalı", status)
	}

	off := models.WorkSlot{Status: models.WorkSlotStatusOff}
	assert.False(t, off.Available())
}
