package services

import "sort"

// AssignmentCandidate atama önerisi için aday teknisyenin anlık yük bilgisi.
type AssignmentCandidate struct {
	TechnicianID           uint   `json:"technician_id"`
	FullName               string `json:"full_name"`
	OnDutyNow              bool   `json:"on_duty_now"`
	ActiveAssignmentsToday int    `json:"active_assignments_today"`
	ActiveAssignmentsMonth int    `json:"active_assignments_month"`
}

// RankCandidates adayları yük dengesine göre sıralar: önce günlük aktif
// atama sayısı, eşitlikte aylık sayı, yine eşitlikte teknisyen ID'si.
// Acil kayıtlarda o an mesaide olanlar öne çekilir. Veri erişimi içermez;
// girdi aynıysa çıktı aynıdır.
func RankCandidates(candidates []AssignmentCandidate, emergency bool) []AssignmentCandidate {
	ranked := make([]AssignmentCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if emergency && a.OnDutyNow != b.OnDutyNow {
			return a.OnDutyNow
		}
		if a.ActiveAssignmentsToday != b.ActiveAssignmentsToday {
			return a.ActiveAssignmentsToday < b.ActiveAssignmentsToday
		}
		if a.ActiveAssignmentsMonth != b.ActiveAssignmentsMonth {
			return a.ActiveAssignmentsMonth < b.ActiveAssignmentsMonth
		}
		return a.TechnicianID < b.TechnicianID
	})
	return ranked
}
