package models

import "time"

// Slot günü vardiyalara bölen isimli zaman dilimi (sabah/akşam/gece).
// Dakika cinsinden [StartMinute, EndMinute) penceresi gün içinde tanımlıdır;
// EndMinute en fazla 1440 olabilir, pencereler gece yarısını aşmaz.
type Slot struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	StartMinute int    `gorm:"not null" json:"start_minute"`
	EndMinute   int    `gorm:"not null" json:"end_minute"`
}

// Seed edilen vardiya adları.
const (
	SlotNameMorning = "SABAH"
	SlotNameEvening = "AKSAM"
	SlotNameNight   = "GECE"
)

// WindowOn vardiyanın verilen güne denk gelen mutlak zaman penceresini döndürür.
func (s Slot) WindowOn(day time.Time) (time.Time, time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(s.StartMinute) * time.Minute),
		midnight.Add(time.Duration(s.EndMinute) * time.Minute)
}

// Covers t anı bu vardiyanın penceresi içinde mi? (başlangıç dahil, bitiş hariç)
func (s Slot) Covers(t time.Time) bool {
	start, end := s.WindowOn(t)
	return !t.Before(start) && t.Before(end)
}

// WindowsOverlap iki zaman aralığı kesişiyor mu? (yarı açık aralıklar)
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
