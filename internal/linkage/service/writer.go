package service

import (
	"fmt"
	"io"

	"component-linker/internal/fileio"
	"component-linker/internal/linkage/model"
)

// OutputTable раскладывает строки по model.OutputColumns.
// Колонки, которых нет в записи, пишутся пустыми.
func OutputTable(rows []model.LinkageRow) [][]any {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		rec := r.Record()
		line := make([]any, len(model.OutputColumns))
		for i, col := range model.OutputColumns {
			if v, ok := rec[col]; ok {
				line[i] = v
			} else {
				line[i] = ""
			}
		}
		out = append(out, line)
	}
	return out
}

// Write сохраняет строки в xlsx по path. Без строк файл не трогается и возвращается false.
func Write(path string, rows []model.LinkageRow) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	if err := fileio.WriteXLSX(path, model.OutputColumns, OutputTable(rows)); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// Encode пишет xlsx-книгу со строками в w.
func Encode(w io.Writer, rows []model.LinkageRow) error {
	return fileio.EncodeXLSX(w, model.OutputColumns, OutputTable(rows))
}
