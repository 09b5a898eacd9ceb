package axsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchKey(t *testing.T) {
	tests := []struct {
		input string
		want  SearchKey
	}{
		{"heading", KeyHeading},
		{"Heading", KeyHeading},
		{"heading-same-level", KeyHeadingSameLevel},
		{"HeadingSameLevel", KeyHeadingSameLevel},
		{"heading_same_level", KeyHeadingSameLevel},
		{" misspelled-word ", KeyMisspelledWord},
		{"AnyType", KeyAnyType},
		{"heading-level-3", KeyHeadingLevel3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSearchKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSearchKey_Unknown(t *testing.T) {
	_, err := ParseSearchKey("sparkles")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSearchKey_NamesRoundTrip(t *testing.T) {
	for _, k := range AllKeys() {
		got, err := ParseSearchKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Description(), k.String())
	}
	assert.Equal(t, "SearchKey(-1)", SearchKey(-1).String())
}

func TestExpandKeys(t *testing.T) {
	keys, err := ExpandKeys([]string{"heading", "interactive", "link", "heading"})
	require.NoError(t, err)
	assert.Equal(t, []SearchKey{
		KeyHeading, KeyButton, KeyCheckbox, KeyRadioGroup, KeyTextField, KeyLink, KeyControl,
	}, keys)

	_, err = ExpandKeys([]string{"heading", "nope"})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"", "next", "NEXT", "forward"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Next, d, s)
	}
	for _, s := range []string{"previous", "prev", "Backward"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Previous, d, s)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestTextMarkerRange_Ordering(t *testing.T) {
	a := NewRange(1, 1, 0, 4)
	b := NewRange(1, 1, 6, 9)
	c := NewRange(2, 2, 0, 1)
	wider := NewRange(1, 1, 0, 6)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c), "later node sorts after any offset in an earlier node")
	assert.True(t, a.Less(wider), "same start orders by end")
	assert.True(t, c.Greater(a))
	assert.Equal(t, 0, a.Compare(NewRange(1, 1, 0, 4)))
	assert.False(t, a.IsEmpty())
	assert.True(t, NewRange(1, 1, 3, 3).IsEmpty())
	assert.Equal(t, "1[0:4]", a.String())
}
