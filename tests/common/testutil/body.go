//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it was flattened to a map.
type Mutation func(m map[string]any)

// Field sets key to value, or drops the key when value is nil so binding
// sees a missing field rather than a zero value.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap round-trips a request DTO through JSON so tests can tweak single
// fields, including ones the struct type would never allow.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range muts {
		if mutate != nil {
			mutate(m)
		}
	}
	return m
}
