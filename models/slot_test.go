package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var morningSlot = Slot{Name: SlotNameMorning, StartMinute: 480, EndMinute: 960} // 08:00-16:00
var nightSlot = Slot{Name: SlotNameNight, StartMinute: 0, EndMinute: 480}       // 00:00-08:00

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestSlotWindowOn(t *testing.T) {
	start, end := morningSlot.WindowOn(at(12, 30))
	assert.Equal(t, at(8, 0), start)
	assert.Equal(t, at(16, 0), end)
}

func TestSlotCoversHalfOpen(t *testing.T) {
	// Başlangıç dahil, bitiş hariç.
	assert.True(t, morningSlot.Covers(at(8, 0)))
	assert.True(t, morningSlot.Covers(at(15, 59)))
	assert.False(t, morningSlot.Covers(at(16, 0)))
	assert.False(t, morningSlot.Covers(at(7, 59)))

	// Gece vardiyası gün başında, gece yarısı dahil.
	assert.True(t, nightSlot.Covers(at(0, 0)))
	assert.True(t, nightSlot.Covers(at(7, 59)))
	assert.False(t, nightSlot.Covers(at(8, 0)))
}

func TestWindowsOverlap(t *testing.T) {
	// Kesişen pencereler.
	assert.True(t, WindowsOverlap(at(9, 0), at(11, 0), at(10, 0), at(12, 0)))
	assert.True(t, WindowsOverlap(at(10, 0), at(12, 0), at(9, 0), at(11, 0)))
	// İç içe pencereler.
	assert.True(t, WindowsOverlap(at(9, 0), at(16, 0), at(10, 0), at(11, 0)))

	// Uçtan uca değen pencereler çakışmaz (yarı açık aralık).
	assert.False(t, WindowsOverlap(at(9, 0), at(10, 0), at(10, 0), at(11, 0)))
	// Ayrık pencereler.
	assert.False(t, WindowsOverlap(at(9, 0), at(10, 0), at(11, 0), at(12, 0)))
}

func TestAppointmentWindowWithin(t *testing.T) {
	end := at(11, 0)
	withEnd := Appointment{StartTime: at(10, 0), EndTime: &end}
	start, stop := withEnd.WindowWithin(morningSlot)
	assert.Equal(t, at(10, 0), start)
	assert.Equal(t, at(11, 0), stop)

	// Bitiş verilmemişse randevu kapsayan vardiyanın sonuna kadar sürer.
	openEnded := Appointment{StartTime: at(10, 0)}
	start, stop = openEnded.WindowWithin(morningSlot)
	assert.Equal(t, at(10, 0), start)
	assert.Equal(t, at(16, 0), stop)
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(at(13, 45))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d)
}
