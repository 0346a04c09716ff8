package services

import "errors"

// ServiceError çekirdeğin dışarıya verdiği tiplendirilmiş hatalar.
// Mesajlar kullanıcıya gösterilebilir; kararlı kod karşılıkları CodeOf ile alınır.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

// Varlık bulunamadı hataları.
const (
	ErrRequestNotFound     ServiceError = "arıza kaydı bulunamadı"
	ErrAppointmentNotFound ServiceError = "randevu bulunamadı"
	ErrAssignmentNotFound  ServiceError = "atama kaydı bulunamadı"
	ErrWorkSlotNotFound    ServiceError = "vardiya kaydı bulunamadı"
	ErrSlotNotFound        ServiceError = "vardiya tanımı bulunamadı"
	ErrTechniqueNotFound   ServiceError = "teknik bulunamadı"
	ErrUserNotFound        ServiceError = "kullanıcı bulunamadı"
)

// Yetki ve doğrulama hataları.
const (
	ErrForbidden            ServiceError = "bu işlem için yetkiniz yok"
	ErrInvalidInput         ServiceError = "geçersiz girdi verisi"
	ErrInvalidCredentials   ServiceError = "e-posta veya şifre hatalı"
	ErrInvalidTransition    ServiceError = "geçersiz durum geçişi"
	ErrInvalidTimeRange     ServiceError = "geçersiz zaman aralığı"
	ErrRequestNotApproved   ServiceError = "arıza kaydı randevu planlamaya uygun durumda değil"
	ErrAppointmentClosed    ServiceError = "kapalı randevu üzerinde işlem yapılamaz"
	ErrWorkSlotNotAvailable ServiceError = "vardiya kaydı bu işleme uygun durumda değil"
)

// Teklik/uygunluk ihlalleri. Yarışan yazmalarda storage constraint ihlali de
// bu hatalara çevrilir (ham veritabanı hatası dışarı sızmaz).
const (
	ErrDuplicateSlot                ServiceError = "bu teknisyen için aynı gün ve vardiyada zaten kayıt var"
	ErrTechnicianAlreadyAssigned    ServiceError = "teknisyen bu randevuya zaten atanmış"
	ErrSlotConflict                 ServiceError = "teknisyenin uygun vardiyası yok veya çakışan bir ataması var"
	ErrConflictingAppointmentExists ServiceError = "bu kayıt için aktif bir randevu zaten var"
	ErrTechniqueAlreadyGranted      ServiceError = "teknisyen bu tekniğe zaten sahip"
)

var errorCodes = map[ServiceError]string{
	ErrRequestNotFound:              "REQUEST_NOT_FOUND",
	ErrAppointmentNotFound:          "APPOINTMENT_NOT_FOUND",
	ErrAssignmentNotFound:           "ASSIGNMENT_NOT_FOUND",
	ErrWorkSlotNotFound:             "WORK_SLOT_NOT_FOUND",
	ErrSlotNotFound:                 "SLOT_NOT_FOUND",
	ErrTechniqueNotFound:            "TECHNIQUE_NOT_FOUND",
	ErrUserNotFound:                 "USER_NOT_FOUND",
	ErrForbidden:                    "FORBIDDEN",
	ErrInvalidInput:                 "INVALID_INPUT",
	ErrInvalidCredentials:           "INVALID_CREDENTIALS",
	ErrInvalidTransition:            "INVALID_TRANSITION",
	ErrInvalidTimeRange:             "INVALID_TIME_RANGE",
	ErrRequestNotApproved:           "REQUEST_NOT_APPROVED",
	ErrAppointmentClosed:            "APPOINTMENT_CLOSED",
	ErrWorkSlotNotAvailable:         "WORK_SLOT_NOT_AVAILABLE",
	ErrDuplicateSlot:                "DUPLICATE_SLOT",
	ErrTechnicianAlreadyAssigned:    "TECHNICIAN_ALREADY_ASSIGNED",
	ErrSlotConflict:                 "SLOT_CONFLICT",
	ErrConflictingAppointmentExists: "CONFLICTING_APPOINTMENT_EXISTS",
	ErrTechniqueAlreadyGranted:      "TECHNIQUE_ALREADY_GRANTED",
}

// CodeOf hatanın kararlı kodunu döndürür; bilinmeyen hatalar INTERNAL'dır.
func CodeOf(err error) string {
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		if code, ok := errorCodes[svcErr]; ok {
			return code
		}
	}
	return "INTERNAL"
}

// IsNotFound hata bir "bulunamadı" hatası mı?
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrAssignmentNotFound) ||
		errors.Is(err, ErrWorkSlotNotFound) ||
		errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrTechniqueNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
