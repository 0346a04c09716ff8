package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	params := ListParams{Page: -1, PerPage: 500, OrderBy: "yukari"}
	params.Validate()

	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, MaxPerPage, params.PerPage)
	assert.Equal(t, DefaultOrderBy, params.OrderBy)
}

func TestValidateKeepsValidValues(t *testing.T) {
	params := ListParams{Page: 3, PerPage: 50, OrderBy: "asc"}
	params.Validate()

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.PerPage)
	assert.Equal(t, "asc", params.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	params := ListParams{Page: 1, PerPage: 20}
	assert.Equal(t, 0, params.CalculateOffset())

	params.Page = 4
	assert.Equal(t, 60, params.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 5, CalculateTotalPages(100, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}
