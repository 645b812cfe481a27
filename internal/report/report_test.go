package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DekoMao/qms-mao-brasil/internal/mapping"
	"github.com/DekoMao/qms-mao-brasil/internal/supplier"
	"github.com/DekoMao/qms-mao-brasil/internal/types"
)

func TestWriteDefects_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defects_data.json")
	defects := []mapping.DefectRecord{
		{DocNumber: "D1", Supplier: types.Some("Ação & Cia <BR>"), QtyDefect: types.Some[int64](3)},
	}

	require.NoError(t, WriteDefects(path, defects, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"docNumber\": \"D1\",\n    \"openDate\": null,"))
	assert.Contains(t, text, `"supplier": "Ação & Cia <BR>"`)
	assert.Contains(t, text, `"qtyDefect": 3`)
	assert.NotContains(t, text, `\u00`)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Nil(t, decoded[0]["symptom"])
}

func TestWriteSuppliers_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers_data.json")
	require.NoError(t, WriteSuppliers(path, nil, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteSuppliers_KeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers_data.json")
	records := []supplier.Record{{Name: "Acme", Code: "SUP001", AccessCode: "AB12CD34"}}
	require.NoError(t, WriteSuppliers(path, records, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[\n  {\n    \"name\": \"Acme\",\n    \"code\": \"SUP001\",\n    \"accessCode\": \"AB12CD34\"\n  }\n]\n"
	assert.Equal(t, want, string(data))
}

func TestWriteJSON_ReplacesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defects_data.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0644))

	require.NoError(t, WriteJSON(path, []int{1}, "  "))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]\n", string(data))
}

func TestWriteJSON_UnwritableDirectory(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "x.json"), []int{}, "  ")
	require.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	longSymptom := strings.Repeat("é", 60)
	var defects []mapping.DefectRecord
	for i := 1; i <= 7; i++ {
		defects = append(defects, mapping.DefectRecord{
			DocNumber: fmt.Sprintf("D%d", i),
			Supplier:  types.Some("Acme"),
			Symptom:   types.Some(longSymptom),
			Status:    types.Some("ONGOING"),
		})
	}
	defects[1] = mapping.DefectRecord{DocNumber: "D2"}

	var suppliers []supplier.Record
	for i := 1; i <= 12; i++ {
		suppliers = append(suppliers, supplier.Record{
			Name:       fmt.Sprintf("S%02d", i),
			Code:       supplier.DefaultCodeFormat().Code(i),
			AccessCode: "ABCD1234",
		})
	}

	var buf bytes.Buffer
	PrintSummary(&buf, defects, suppliers, DefaultOptions())
	out := buf.String()

	assert.Contains(t, out, "Total defects extracted: 7\n")
	assert.Contains(t, out, "Total unique suppliers:  12\n")
	assert.Contains(t, out, "  D1: Acme - "+strings.Repeat("é", 50)+"... Status: ONGOING\n")
	assert.Contains(t, out, "  D2: N/A - N/A... Status: N/A\n")
	assert.Contains(t, out, "  D5:")
	assert.NotContains(t, out, "  D6:")
	assert.Contains(t, out, "  SUP010: S10 (access code: ABCD1234)\n")
	assert.NotContains(t, out, "SUP011")
	assert.Contains(t, out, "  ... and 2 more suppliers\n")
}

func TestPrintSummary_FewSuppliers(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, nil, []supplier.Record{{Name: "Acme", Code: "SUP001", AccessCode: "X"}}, DefaultOptions())
	assert.NotContains(t, buf.String(), "more suppliers")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 50))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "çã", Truncate("çãõ", 2))
	assert.Equal(t, "abc", Truncate("abc", -1))
}
