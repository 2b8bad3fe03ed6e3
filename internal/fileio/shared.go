package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Table — лист в памяти: заголовки в исходном порядке и строки как map[header]value.
// Пустые ячейки всегда "" (отсутствующих ключей нет).
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// Has сообщает, есть ли колонка с таким заголовком.
func (t Table) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// ReadTable выбирает парсер по расширению. headerRow — номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) (Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return Table{}, fmt.Errorf("unsupported file: %s", filename)
	}
}

// headerIndex переводит 1-based headerRow в индекс строки; вне диапазона — первая строка.
func headerIndex(rows [][]string, headerRow int) int {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		return 0
	}
	return idx
}

// pickHeader берёт строку заголовков: пустые -> "Column N", повторы -> "Name.1", "Name.2".
func pickHeader(rows [][]string, headerRow int) []string {
	if len(rows) == 0 {
		return nil
	}
	h := rows[headerIndex(rows, headerRow)]
	out := make([]string, len(h))
	used := make(map[string]bool, len(h))
	dups := make(map[string]int)
	for i, v := range h {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		name := v
		for used[name] {
			dups[v]++
			name = fmt.Sprintf("%s.%d", v, dups[v])
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// rowsToTable конвертирует AoA в Table, пропуская полностью пустые строки.
// Короткие строки добиваются "".
func rowsToTable(rows [][]string, headers []string, headerRow int) Table {
	t := Table{Columns: headers}
	if len(rows) == 0 {
		return t
	}
	for r := headerIndex(rows, headerRow) + 1; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			t.Rows = append(t.Rows, m)
		}
	}
	return t
}
