package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_MarshalJSON(t *testing.T) {
	type record struct {
		Name  Optional[string] `json:"name"`
		Count Optional[int64]  `json:"count"`
	}

	data, err := json.Marshal(record{Name: Some("Ação <1>"), Count: None[int64]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ação <1>","count":null}`, string(data))
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var got struct {
		Name  Optional[string] `json:"name"`
		Count Optional[int64]  `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"count":7}`), &got))

	assert.False(t, got.Name.Valid())
	n, ok := got.Count.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
}

func TestOptional_OrElse(t *testing.T) {
	assert.Equal(t, "N/A", None[string]().OrElse("N/A"))
	assert.Equal(t, "x", Some("x").OrElse("N/A"))
}

func TestCellKind_String(t *testing.T) {
	assert.Equal(t, "empty", EmptyCell().Kind.String())
	assert.Equal(t, "text", TextCell("a").Kind.String())
	assert.Equal(t, "number", NumberCell(1).Kind.String())
	assert.Equal(t, "bool", BoolCell(true).Kind.String())
	assert.Equal(t, "time", TimeCell(time.Time{}).Kind.String())
	assert.True(t, EmptyCell().IsEmpty())
	assert.False(t, TextCell("").IsEmpty())
}
