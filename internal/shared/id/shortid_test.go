package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithPrefix(t *testing.T) {
	sid, err := GenerateWithPrefix(PrefixTestimonial, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sid, "tm_"))
	assert.Len(t, sid, len("tm_")+DefaultLength)
	require.NoError(t, ValidatePrefix(sid, PrefixTestimonial))
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		sid, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[sid], "duplicate id %s", sid)
		seen[sid] = true
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.Error(t, ValidatePrefix("tm_", PrefixTestimonial))
	assert.Error(t, ValidatePrefix("prj_abc", PrefixTestimonial))
	assert.Error(t, ValidatePrefix("", PrefixTestimonial))
	assert.NoError(t, ValidatePrefix("ppl_x1Y2z3", PrefixPerson))
}
