// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBValueScan(t *testing.T) {
	in := JSONB{"accent": "#ff70a6", "darkMode": true, "spacing": float64(2)}

	value, err := in.Value()
	require.NoError(t, err)

	var out JSONB
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestJSONBNil(t *testing.T) {
	var empty JSONB

	value, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	out := JSONB{"stale": true}
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}
