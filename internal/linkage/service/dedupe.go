package service

import (
	"component-linker/internal/fileio"
	"component-linker/internal/linkage/model"
)

// Project вырезает колонки роли и схлопывает точные дубли.
// Порядок — по первому вхождению.
func Project(t fileio.Table, r model.Role) []model.Component {
	out := make([]model.Component, 0, len(t.Rows))
	for _, rec := range t.Rows {
		out = append(out, model.FromRecord(rec, r))
	}
	return Dedupe(out)
}

// Dedupe убирает повторяющиеся записи, сохраняя первое вхождение.
func Dedupe(in []model.Component) []model.Component {
	seen := make(map[model.Component]struct{}, len(in))
	out := make([]model.Component, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
