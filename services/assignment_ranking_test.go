package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidatesByDailyThenMonthlyLoad(t *testing.T) {
	candidates := []AssignmentCandidate{
		{TechnicianID: 1, ActiveAssignmentsToday: 3, ActiveAssignmentsMonth: 10},
		{TechnicianID: 2, ActiveAssignmentsToday: 1, ActiveAssignmentsMonth: 20},
		{TechnicianID: 3, ActiveAssignmentsToday: 1, ActiveAssignmentsMonth: 5},
	}

	ranked := RankCandidates(candidates, false)

	require.Len(t, ranked, 3)
	// Günlük yük önce: 2 ve 3 (1'er atama), sonra 1 (3 atama).
	// Eşitlikte aylık yük: 3 (5) < 2 (20).
	assert.Equal(t, uint(3), ranked[0].TechnicianID)
	assert.Equal(t, uint(2), ranked[1].TechnicianID)
	assert.Equal(t, uint(1), ranked[2].TechnicianID)
}

func TestRankCandidatesTieBreakByTechnicianID(t *testing.T) {
	candidates := []AssignmentCandidate{
		{TechnicianID: 9, ActiveAssignmentsToday: 2, ActiveAssignmentsMonth: 7},
		{TechnicianID: 4, ActiveAssignmentsToday: 2, ActiveAssignmentsMonth: 7},
	}

	ranked := RankCandidates(candidates, false)

	assert.Equal(t, uint(4), ranked[0].TechnicianID)
	assert.Equal(t, uint(9), ranked[1].TechnicianID)
}

func TestRankCandidatesEmergencyBoostsOnDuty(t *testing.T) {
	candidates := []AssignmentCandidate{
		{TechnicianID: 1, OnDutyNow: false, ActiveAssignmentsToday: 0, ActiveAssignmentsMonth: 0},
		{TechnicianID: 2, OnDutyNow: true, ActiveAssignmentsToday: 5, ActiveAssignmentsMonth: 30},
	}

	// Normal kayıtta yükü az olan önde.
	normal := RankCandidates(candidates, false)
	assert.Equal(t, uint(1), normal[0].TechnicianID)

	// Acil kayıtta mesaideki teknisyen, yükü fazla olsa da öne geçer.
	emergency := RankCandidates(candidates, true)
	assert.Equal(t, uint(2), emergency[0].TechnicianID)
}

func TestRankCandidatesDeterministicAndNonMutating(t *testing.T) {
	candidates := []AssignmentCandidate{
		{TechnicianID: 3, ActiveAssignmentsToday: 1},
		{TechnicianID: 1, ActiveAssignmentsToday: 0},
		{TechnicianID: 2, ActiveAssignmentsToday: 2},
	}

	first := RankCandidates(candidates, false)
	second := RankCandidates(candidates, false)

	assert.Equal(t, first, second)
	// Girdi dilimi değişmemeli.
	assert.Equal(t, uint(3), candidates[0].TechnicianID)
}

func TestRankCandidatesEmptyInput(t *testing.T) {
	assert.Empty(t, RankCandidates(nil, true))
	assert.Empty(t, RankCandidates([]AssignmentCandidate{}, false))
}
