package sourcemap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDedupesNames(t *testing.T) {
	m := New("input.ts", "const x = 1;")
	b := NewBuilder(m)

	b.Add(1, 0, 1, 6, "x")
	b.Add(2, 0, 1, 6, "x")
	b.Add(3, 0, 2, 0, "")

	assert.Equal(t, []string{"x"}, m.Names)
	require.Len(t, m.Mappings, 3)
	assert.Equal(t, 0, m.Mappings[0].NameIndex)
	assert.Equal(t, 0, m.Mappings[1].NameIndex)
	assert.Equal(t, -1, m.Mappings[2].NameIndex)
}

func TestMapMarshalsVersion3(t *testing.T) {
	m := New("input.ts", "")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version":3`)
}
