package service

import (
	"component-linker/internal/fileio"
	"component-linker/internal/linkage/model"
)

// Run — основной прогон: валидация схемы, дедуп проекций, сравнение с кандидатами.
// Ошибка схемы (*model.SchemaError) возвращается до любых сравнений.
func Run(t fileio.Table, candidates []model.Component) (model.Result, error) {
	res := model.Result{Columns: t.Columns}
	if err := Validate(t); err != nil {
		return res, err
	}

	enabling := Project(t, model.Enabling)
	dependent := Project(t, model.Dependent)
	res.EnablingRows = len(enabling)
	res.DependentRows = len(dependent)

	res.Rows, res.Comparisons = Score(enabling, dependent, candidates)
	return res, nil
}
