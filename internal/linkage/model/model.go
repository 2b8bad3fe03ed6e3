package model

import (
	"fmt"
	"strings"
)

// Role — сторона связи. Роль задаётся только префиксом колонок.
type Role string

const (
	Enabling  Role = "Enabling"
	Dependent Role = "Dependent"
)

// Columns — пять обязательных колонок роли в порядке
// name, description, source, url, agency.
func (r Role) Columns() []string {
	p := string(r)
	return []string{
		p + " Component",
		p + " Component Description",
		p + " Source",
		p + " Component URL",
		p + " Source Agency",
	}
}

// RequiredColumns — все десять колонок, которые должны быть во входном файле.
func RequiredColumns() []string {
	return append(Enabling.Columns(), Dependent.Columns()...)
}

const (
	PolicyColumn     = "Linkage mandated by what US Code or OMB policy?"
	SimilarityColumn = "Similarity"
)

// OutputColumns — фиксированный порядок колонок выходного листа.
var OutputColumns = []string{
	"Enabling Source",
	"Enabling Component",
	"Enabling Component Description",
	"Dependent Component",
	"Dependent Component Description",
	"Dependent Source",
	PolicyColumn,
	"Enabling Component URL",
	"Dependent Component URL",
	"Enabling Source Agency",
	"Dependent Source Agency",
	SimilarityColumn,
}

// Component — запись компонента (существующего или кандидата).
type Component struct {
	Source      string `json:"source" yaml:"source"`
	Name        string `json:"component" yaml:"component" validate:"required"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url" validate:"omitempty,url"`
	Agency      string `json:"agency" yaml:"agency"`
}

// FromRecord собирает компонент роли r из строки таблицы.
func FromRecord(rec map[string]string, r Role) Component {
	c := r.Columns()
	return Component{
		Name:        rec[c[0]],
		Description: rec[c[1]],
		Source:      rec[c[2]],
		URL:         rec[c[3]],
		Agency:      rec[c[4]],
	}
}

// Fields — значения в порядке Role.Columns().
func (c Component) Fields() []string {
	return []string{c.Name, c.Description, c.Source, c.URL, c.Agency}
}

// Orientation — в какой роли кандидат попал в связь.
type Orientation string

const (
	CandidateAsDependent Orientation = "candidate_as_dependent"
	CandidateAsEnabling  Orientation = "candidate_as_enabling"
)

// LinkageRow — найденная пара Enabling/Dependent со скором схожести.
// Policy заполняется вручную при ревью, при генерации всегда пустое.
type LinkageRow struct {
	Enabling    Component   `json:"enabling"`
	Dependent   Component   `json:"dependent"`
	Policy      string      `json:"policy"`
	Similarity  float64     `json:"similarity"`
	Orientation Orientation `json:"orientation"`
}

// Record раскладывает строку по именам выходных колонок.
func (r LinkageRow) Record() map[string]any {
	m := make(map[string]any, len(OutputColumns))
	for i, col := range Enabling.Columns() {
		m[col] = r.Enabling.Fields()[i]
	}
	for i, col := range Dependent.Columns() {
		m[col] = r.Dependent.Fields()[i]
	}
	m[PolicyColumn] = r.Policy
	m[SimilarityColumn] = r.Similarity
	return m
}

// Result — итог одного прогона.
type Result struct {
	Columns       []string     `json:"columns"`
	Rows          []LinkageRow `json:"rows"`
	EnablingRows  int          `json:"enablingRows"`
	DependentRows int          `json:"dependentRows"`
	Comparisons   int          `json:"comparisons"`
}

// Count считает строки одной ориентации.
func (r Result) Count(o Orientation) int {
	n := 0
	for _, row := range r.Rows {
		if row.Orientation == o {
			n++
		}
	}
	return n
}

// SchemaError — во входном файле нет обязательных колонок.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("the input file is missing required columns: %s", strings.Join(e.Missing, ", "))
}
