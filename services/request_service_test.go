package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v uint) *uint { return &v }

func TestValidateCreateRequestInput(t *testing.T) {
	valid := CreateRequestInput{Subject: "Mutfakta su kaçağı", ApartmentID: ptr(12)}
	assert.NoError(t, ValidateCreateRequestInput(valid))

	commonArea := CreateRequestInput{Subject: "Asansör arızası", CommonAreaID: ptr(3)}
	assert.NoError(t, ValidateCreateRequestInput(commonArea))
}

func TestValidateCreateRequestInputRejectsMissingSubject(t *testing.T) {
	input := CreateRequestInput{Subject: "   ", ApartmentID: ptr(12)}
	assert.ErrorIs(t, ValidateCreateRequestInput(input), ErrInvalidInput)
}

func TestValidateCreateRequestInputTargetXOR(t *testing.T) {
	// Hedefsiz kayıt geçersiz.
	neither := CreateRequestInput{Subject: "Arıza"}
	assert.ErrorIs(t, ValidateCreateRequestInput(neither), ErrInvalidInput)

	// Hem daire hem ortak alan geçersiz.
	both := CreateRequestInput{Subject: "Arıza", ApartmentID: ptr(1), CommonAreaID: ptr(2)}
	assert.ErrorIs(t, ValidateCreateRequestInput(both), ErrInvalidInput)

	// Sıfır ID verilmemiş sayılır.
	zeroApartment := CreateRequestInput{Subject: "Arıza", ApartmentID: ptr(0)}
	assert.ErrorIs(t, ValidateCreateRequestInput(zeroApartment), ErrInvalidInput)
}
