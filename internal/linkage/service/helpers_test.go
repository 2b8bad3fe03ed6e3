package service

import (
	"component-linker/internal/fileio"
	"component-linker/internal/linkage/model"
)

// pairRow — строка входной таблицы: Enabling- и Dependent-стороны.
func pairRow(e, d model.Component) map[string]string {
	rec := make(map[string]string, 10)
	for i, col := range model.Enabling.Columns() {
		rec[col] = e.Fields()[i]
	}
	for i, col := range model.Dependent.Columns() {
		rec[col] = d.Fields()[i]
	}
	return rec
}

func table(rows ...map[string]string) fileio.Table {
	return fileio.Table{Columns: model.RequiredColumns(), Rows: rows}
}

func comp(name, desc string) model.Component {
	return model.Component{
		Name:        name,
		Description: desc,
		Source:      name + " source",
		URL:         "https://example.gov/" + name,
		Agency:      "EOP",
	}
}
