package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := New("bm")
		require.NoError(t, err)
		assert.False(t, ids[id], "id should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestNew_Format(t *testing.T) {
	id, err := New("usr")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "usr-"))
	// 21-char nanoid after the prefix and separator
	assert.Len(t, id, len("usr-")+21)
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		id := MustNew("tok")
		assert.NotEmpty(t, id)
	})
}
