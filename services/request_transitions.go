package services

import "tesis.link/models"

// Durum makinesi saf veri olarak tutulur: (mevcut durum, hedef durum) ->
// izinli roller. Sahiplik kuralları (sakin kendi kaydı, teknisyen atandığı
// kayıt) tabloyu kirletmemek için serviste ayrıca denetlenir.

type transitionKey struct {
	From models.RequestStatus
	To   models.RequestStatus
}

var requestTransitionRoles map[transitionKey][]models.UserRole

func init() {
	requestTransitionRoles = map[transitionKey][]models.UserRole{
		{models.RequestStatusPending, models.RequestStatusApproved}: {
			models.RoleReceptionist, models.RoleTechnicianLead, models.RoleManager,
		},
		{models.RequestStatusApproved, models.RequestStatusInProgress}: {
			models.RoleTechnician, models.RoleTechnicianLead,
		},
		{models.RequestStatusInProgress, models.RequestStatusDiagnosed}: {
			models.RoleTechnician,
		},
		{models.RequestStatusDiagnosed, models.RequestStatusCompletedPendingVerify}: {
			models.RoleTechnician,
		},
		// Teşhis adımı atlanabilir (basit işlerde doğrudan tamamlanır).
		{models.RequestStatusInProgress, models.RequestStatusCompletedPendingVerify}: {
			models.RoleTechnician,
		},
		{models.RequestStatusCompletedPendingVerify, models.RequestStatusAcceptancePendingVerify}: {
			models.RoleTechnicianLead, models.RoleManager,
		},
		{models.RequestStatusAcceptancePendingVerify, models.RequestStatusCompleted}: {
			models.RoleResident, models.RoleReceptionist,
		},
	}

	// Cancelled ve Rejected terminal olmayan her durumdan erişilebilir.
	for _, from := range nonTerminalRequestStatuses {
		requestTransitionRoles[transitionKey{from, models.RequestStatusCancelled}] =
			[]models.UserRole{models.RoleResident, models.RoleReceptionist}
		requestTransitionRoles[transitionKey{from, models.RequestStatusRejected}] =
			[]models.UserRole{models.RoleReceptionist, models.RoleTechnicianLead, models.RoleManager}
	}
}

var nonTerminalRequestStatuses = []models.RequestStatus{
	models.RequestStatusPending,
	models.RequestStatusApproved,
	models.RequestStatusInProgress,
	models.RequestStatusDiagnosed,
	models.RequestStatusCompletedPendingVerify,
	models.RequestStatusAcceptancePendingVerify,
}

var allRequestStatuses = append(nonTerminalRequestStatuses,
	models.RequestStatusCompleted,
	models.RequestStatusCancelled,
	models.RequestStatusRejected,
)

// TransitionDefined (from, to) geçişi herhangi bir rol için tanımlı mı?
func TransitionDefined(from, to models.RequestStatus) bool {
	_, ok := requestTransitionRoles[transitionKey{from, to}]
	return ok
}

// TransitionAllowedRoles (from, to) geçişine izinli rolleri döndürür.
func TransitionAllowedRoles(from, to models.RequestStatus) []models.UserRole {
	return requestTransitionRoles[transitionKey{from, to}]
}

// TransitionAllowed rol bu geçişi yapabilir mi? Sahiplik kontrolü içermez.
func TransitionAllowed(from, to models.RequestStatus, role models.UserRole) bool {
	for _, allowed := range requestTransitionRoles[transitionKey{from, to}] {
		if allowed == role {
			return true
		}
	}
	return false
}
