package service

import "component-linker/internal/linkage/model"

// Score сравнивает описание каждого кандидата со всеми Enabling- и Dependent-записями.
// Кандидат против Enabling даёт связь, где он Dependent, и наоборот.
// Возвращает найденные строки и число выполненных сравнений.
func Score(enabling, dependent, candidates []model.Component) ([]model.LinkageRow, int) {
	var rows []model.LinkageRow
	comparisons := 0
	for _, cand := range candidates {
		for _, e := range enabling {
			comparisons++
			if s := Similarity(cand.Description, e.Description); s >= Threshold {
				rows = append(rows, model.LinkageRow{
					Enabling:    e,
					Dependent:   cand,
					Similarity:  s,
					Orientation: model.CandidateAsDependent,
				})
			}
		}
		for _, d := range dependent {
			comparisons++
			if s := Similarity(cand.Description, d.Description); s >= Threshold {
				rows = append(rows, model.LinkageRow{
					Enabling:    cand,
					Dependent:   d,
					Similarity:  s,
					Orientation: model.CandidateAsEnabling,
				})
			}
		}
	}
	return rows, comparisons
}
