package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	input := "[zeta]\n  a = 1\n\n[alpha]\n  b = 2\n"

	got := sortTOMLSections(input)

	assert.Equal(t, "[alpha]\n  b = 2\n\n[zeta]\n  a = 1\n", got)
}

func TestEncodeTOML_SectionsSorted(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	text := string(data)
	order := []string{"[annotation]", "[autosave]", "[canvas]", "[controls]", "[database]", "[gesture]", "[logging]", "[panels]"}
	last := -1
	for _, header := range order {
		idx := strings.Index(text, header)
		require.NotEqual(t, -1, idx, header)
		assert.Greater(t, idx, last, header)
		last = idx
	}
	assert.Contains(t, text, "drag_slop = 10.0")
}

func TestEncodeTOML_Nil(t *testing.T) {
	_, err := EncodeTOML(nil)
	assert.Error(t, err)
}
