package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	voices := Catalog()

	require.Len(t, voices, 2)
	assert.Equal(t, "lt-LT-LeonasNeural", voices[0].Name)
	assert.Equal(t, "Male", voices[0].Gender)
	assert.Equal(t, "lt-LT-OnaNeural", voices[1].Name)
	assert.Equal(t, "Female", voices[1].Gender)
	for _, v := range voices {
		assert.Equal(t, "Lithuanian", v.Language)
	}
}

func TestCatalogIsolation(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"

	assert.Equal(t, "lt-LT-LeonasNeural", Catalog()[0].Name)
}
