package candidates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
components:
  - source: "33 CFR Part 6"
    component: "33 CFR 6.04"
    description: "harbor safety protocol"
    url: "https://www.ecfr.gov/current/title-33/part-6"
    agency: "USCG"
  - component: "Draft"
    description: ""
`

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "33 CFR 6.04", list[0].Name)
	assert.Equal(t, "harbor safety protocol", list[0].Description)
	assert.Equal(t, "USCG", list[0].Agency)
	assert.Equal(t, "", list[1].URL)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"no components", "components: []\n", "no components"},
		{"missing name", "components:\n  - description: x\n", "component #1"},
		{"bad url", "components:\n  - component: x\n    url: not a url\n", "component #1"},
		{"unknown field", "components:\n  - component: x\n    colour: red\n", "parse yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	list, fromFile, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, Default(), list)

	list, fromFile, err = Load("")
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Len(t, list, 2)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	list, fromFile, err := Load(path)
	require.NoError(t, err)
	assert.True(t, fromFile)
	assert.Len(t, list, 2)
}

func TestDefault_IsValid(t *testing.T) {
	for _, c := range Default() {
		assert.NoError(t, validate.Struct(c))
	}
}
