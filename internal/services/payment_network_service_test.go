package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagsShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want pq.StringArray
	}{
		{"nil", nil, nil},
		{"json array", []interface{}{"cards", "wallets"}, pq.StringArray{"cards", "wallets"}},
		{"string slice", []string{"cards"}, pq.StringArray{"cards"}},
		{"json encoded array", `["cards","wallets"]`, pq.StringArray{"cards", "wallets"}},
		{"comma separated", "cards, wallets ,bnpl", pq.StringArray{"cards", "wallets", "bnpl"}},
		{"single value", "cards", pq.StringArray{"cards"}},
		{"blank string", "   ", nil},
		{"numeric scalar", float64(3), pq.StringArray{"3"}},
		{"bool scalar", true, pq.StringArray{"true"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTags(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeTagsDropsBlanksAndDuplicates(t *testing.T) {
	got, err := NormalizeTags("cards,, cards ,wallets")
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"cards", "wallets"}, got)
}

func TestNormalizeTagsRejectsBadShapes(t *testing.T) {
	_, err := NormalizeTags(map[string]interface{}{"bad": true})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NormalizeTags("[not json")
	assert.ErrorIs(t, err, ErrInvalid)
}
