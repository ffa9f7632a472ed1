package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflatten(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "empty",
			flat: map[string]any{},
			want: map[string]any{},
		},
		{
			name: "keys without dots are untouched",
			flat: map[string]any{"a": 1, "b": "two"},
			want: map[string]any{"a": 1, "b": "two"},
		},
		{
			name: "dotted keys nest",
			flat: map[string]any{
				"name":            "x",
				"address.street":  "main",
				"address.city":    "springfield",
				"address.geo.lat": 1.5,
			},
			want: map[string]any{
				"name": "x",
				"address": map[string]any{
					"street": "main",
					"city":   "springfield",
					"geo":    map[string]any{"lat": 1.5},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Deflatten(tt.flat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeflattenConflicts(t *testing.T) {
	tests := []struct {
		name    string
		flat    map[string]any
		segment string
	}{
		{
			name:    "leaf then nested",
			flat:    map[string]any{"a": 1, "a.b": 2},
			segment: "a",
		},
		{
			name:    "deep leaf then nested",
			flat:    map[string]any{"x.a": 1, "x.a.b": 2},
			segment: "x.a",
		},
		{
			name:    "caller map value used as prefix",
			flat:    map[string]any{"a": map[string]any{"c": 1}, "a.b": 2},
			segment: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deflatten(tt.flat)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConflictingPath))

			var cpe *ConflictingPathError
			require.ErrorAs(t, err, &cpe)
			assert.Equal(t, tt.segment, cpe.Segment)
			assert.Contains(t, cpe.Error(), tt.segment)
		})
	}
}

func TestDeflattenIsLeftInverseOfFlatten(t *testing.T) {
	nested := []map[string]any{
		{},
		{"a": 1},
		{"a": map[string]any{}, "b": 1},
		{"a": map[string]any{"b": map[string]any{}}},
		{"a": map[string]any{"b": map[string]any{"c": "d"}}, "e": true},
		{"user": map[string]any{"name": "n", "tags": []any{"x", "y"}}, "id": 7},
	}

	for _, m := range nested {
		got, err := Deflatten(Flatten(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}},
		"e": 3,
	})

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": 2, "e": 3}, got)

	t.Run("empty nested map is a leaf", func(t *testing.T) {
		got := Flatten(map[string]any{"a": map[string]any{"b": map[string]any{}}, "c": 1})
		assert.Equal(t, map[string]any{"a.b": map[string]any{}, "c": 1}, got)
	})
}
