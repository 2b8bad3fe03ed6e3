package service

import (
	"fmt"
	"io"

	"component-linker/internal/fileio"
	"component-linker/internal/linkage/model"
)

// Validate проверяет наличие всех обязательных колонок.
// Возвращает *model.SchemaError со списком всех отсутствующих.
func Validate(t fileio.Table) error {
	var missing []string
	for _, col := range model.RequiredColumns() {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &model.SchemaError{Missing: missing}
	}
	return nil
}

// Load читает таблицу (первый лист, headerRow 1-based). Валидация — отдельно, через Validate.
func Load(r io.Reader, filename string, headerRow int) (fileio.Table, error) {
	t, err := fileio.ReadTable(r, filename, headerRow)
	if err != nil {
		return fileio.Table{}, fmt.Errorf("read %s: %w", filename, err)
	}
	return t, nil
}

// LoadFile — Load по пути к файлу.
func LoadFile(path string) (fileio.Table, error) {
	t, err := fileio.ReadFile(path, 1)
	if err != nil {
		return fileio.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
