package services

import (
	"testing"
	"time"

	"tesis.link/models"

	"github.com/stretchr/testify/assert"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

var (
	morningShift = models.Slot{Name: models.SlotNameMorning, StartMinute: 8 * 60, EndMinute: 16 * 60}
	eveningShift = models.Slot{Name: models.SlotNameEvening, StartMinute: 16 * 60, EndMinute: 24 * 60}
)

func techDaySlots(technicianID uint) []models.WorkSlot {
	return []models.WorkSlot{
		{TechnicianID: technicianID, Status: models.WorkSlotStatusNotStarted, Slot: morningShift},
		{TechnicianID: technicianID, Status: models.WorkSlotStatusNotStarted, Slot: eveningShift},
	}
}

func openEndedAppointment(id uint, start time.Time) models.Appointment {
	appt := models.Appointment{StartTime: start}
	appt.ID = id
	return appt
}

// Açık uçlu randevu yalnızca KENDİ vardiyasının sonuna kadar yer kaplar: sabah
// vardiyasındaki 14:00 randevusu, akşam vardiyasındaki 18:00 adayıyla çakışmaz.
func TestWindowConflictOpenEndedStaysInOwnShift(t *testing.T) {
	morningAppt := openEndedAppointment(1, clockAt(14, 0))
	existing := []models.AppointmentAssign{{AppointmentID: 1, UserID: 7, Appointment: morningAppt}}

	candidate := openEndedAppointment(2, clockAt(18, 0))

	conflict := hasWindowConflict(7, &candidate, eveningShift, existing, techDaySlots(7))
	assert.False(t, conflict, "sabah vardiyasındaki açık uçlu randevu akşam adayını engellememeli")
}

// Aynı vardiya içinde pencereler kesişiyorsa çakışma var.
func TestWindowConflictWithinSameShift(t *testing.T) {
	morningAppt := openEndedAppointment(1, clockAt(14, 0))
	existing := []models.AppointmentAssign{{AppointmentID: 1, UserID: 7, Appointment: morningAppt}}

	candidate := openEndedAppointment(2, clockAt(15, 0))

	conflict := hasWindowConflict(7, &candidate, morningShift, existing, techDaySlots(7))
	assert.True(t, conflict)
}

// Bitiş saati açıkça verilmiş randevular vardiyadan bağımsız kendi penceresini
// kullanır: 09:00-10:00 randevusu aynı vardiyadaki 11:00 adayını engellemez.
func TestWindowConflictExplicitEndTime(t *testing.T) {
	end := clockAt(10, 0)
	boundedAppt := openEndedAppointment(1, clockAt(9, 0))
	boundedAppt.EndTime = &end
	existing := []models.AppointmentAssign{{AppointmentID: 1, UserID: 7, Appointment: boundedAppt}}

	candidate := openEndedAppointment(2, clockAt(11, 0))

	conflict := hasWindowConflict(7, &candidate, morningShift, existing, techDaySlots(7))
	assert.False(t, conflict)
}

// Teknisyen randevuya zaten atanmışsa tekrar önerilmez / atanamaz.
func TestWindowConflictAlreadyAssignedTechnician(t *testing.T) {
	appt := openEndedAppointment(5, clockAt(9, 0))
	existing := []models.AppointmentAssign{{AppointmentID: 5, UserID: 7, Appointment: appt}}

	conflict := hasWindowConflict(7, &appt, morningShift, existing, techDaySlots(7))
	assert.True(t, conflict)
}

func TestResolveTechniqueFilter(t *testing.T) {
	request := &models.RepairRequest{TechniqueID: ptr(3)}

	// Parametre yoksa kaydın tekniği geçerli.
	assert.Equal(t, ptr(3), resolveTechniqueFilter(request, nil))

	// Parametre kaydın tekniğini ezer.
	assert.Equal(t, ptr(9), resolveTechniqueFilter(request, ptr(9)))

	// Sıfır filtreyi tamamen kaldırır.
	assert.Nil(t, resolveTechniqueFilter(request, ptr(0)))

	// Tekniği olmayan kayıt + parametre yok -> filtre yok.
	assert.Nil(t, resolveTechniqueFilter(&models.RepairRequest{}, nil))
}

func TestAssignmentAffectedUsers(t *testing.T) {
	assigns := []models.AppointmentAssign{{UserID: 4}, {UserID: 9}}

	assert.Equal(t, []uint{2, 4, 9}, assignmentAffectedUsers(2, assigns))

	// Talep eden çözülemediyse yalnızca teknisyenler bilgilendirilir.
	assert.Equal(t, []uint{4, 9}, assignmentAffectedUsers(0, assigns))
}
