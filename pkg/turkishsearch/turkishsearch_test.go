package turkishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "camasir", Normalize("çamaşır"))
	assert.Equal(t, "isitma sogutma", Normalize("İSITMA SÖĞÜTMA"))
	assert.Equal(t, "sihhi tesisat", Normalize("sıhhi tesisat"))
	assert.Equal(t, "boya badana", Normalize("boya badana"))
}

func TestSQLFilter(t *testing.T) {
	clause, args := SQLFilter("subject", "Kaçak")

	assert.Contains(t, clause, "translate(lower(subject)")
	assert.Contains(t, clause, "ILIKE")
	assert.Len(t, args, 3)
	assert.Equal(t, "%kacak%", args[2])
}
