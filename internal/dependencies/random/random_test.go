package random

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenHasPrefixAndIsUnique(t *testing.T) {
	r := New()

	a := r.Token("sess_")
	b := r.Token("sess_")

	assert.True(t, strings.HasPrefix(a, "sess_"))
	assert.Len(t, a, len("sess_")+22)
	assert.NotEqual(t, a, b)
}

func TestUUIDIsValid(t *testing.T) {
	r := New()

	parsed, err := uuid.Parse(r.UUID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
