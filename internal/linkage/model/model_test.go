package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t, []string{
		"Enabling Component", "Enabling Component Description", "Enabling Source",
		"Enabling Component URL", "Enabling Source Agency",
		"Dependent Component", "Dependent Component Description", "Dependent Source",
		"Dependent Component URL", "Dependent Source Agency",
	}, RequiredColumns())
}

func TestFromRecord(t *testing.T) {
	rec := map[string]string{
		"Dependent Component":             "33 CFR 6",
		"Dependent Component Description": "harbor safety protocol",
		"Dependent Source":                "CFR",
		"Dependent Component URL":         "https://example.gov/6",
		"Dependent Source Agency":         "USCG",
		"Enabling Component":              "ignored",
	}
	c := FromRecord(rec, Dependent)
	assert.Equal(t, Component{
		Source: "CFR", Name: "33 CFR 6", Description: "harbor safety protocol",
		URL: "https://example.gov/6", Agency: "USCG",
	}, c)
}

func TestLinkageRowRecord_CoversOutputColumns(t *testing.T) {
	row := LinkageRow{
		Enabling:   Component{Name: "E", Description: "ed", Source: "es", URL: "eu", Agency: "ea"},
		Dependent:  Component{Name: "D", Description: "dd", Source: "ds", URL: "du", Agency: "da"},
		Similarity: 0.7,
	}
	rec := row.Record()

	assert.Len(t, rec, len(OutputColumns))
	for _, col := range OutputColumns {
		assert.Contains(t, rec, col)
	}
	assert.Equal(t, "es", rec["Enabling Source"])
	assert.Equal(t, "du", rec["Dependent Component URL"])
	assert.Equal(t, "", rec[PolicyColumn])
	assert.Equal(t, 0.7, rec[SimilarityColumn])
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{Missing: []string{"Enabling Source Agency", "Dependent Source"}}
	assert.EqualError(t, err, "the input file is missing required columns: Enabling Source Agency, Dependent Source")
}
