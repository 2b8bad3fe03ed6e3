package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"component-linker/internal/config"
	"component-linker/internal/linkage/candidates"
	"component-linker/internal/linkage/model"
	linkSvc "component-linker/internal/linkage/service"
)

func runBatch(cmd *cobra.Command, _ []string) error {
	cands, fromFile, err := candidates.Load(cfg.CandidatesFile)
	if err != nil {
		return err
	}
	logger.Info().
		Int("candidates", len(cands)).
		Bool("from_file", fromFile).
		Str("file", cfg.CandidatesFile).
		Msg("candidates loaded")

	return batch(cmd.OutOrStdout(), logger, config.InputFile, config.OutputFile, cands)
}

// batch — пакетный прогон: чтение, печать колонок, сравнение, запись.
// Ошибка схемы печатается в out и возвращается; файл результата при этом не пишется.
func batch(out io.Writer, logger zerolog.Logger, input, output string, cands []model.Component) error {
	start := time.Now()

	tbl, err := linkSvc.LoadFile(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Column names in the Excel file:")
	for _, col := range tbl.Columns {
		fmt.Fprintf(out, "- %s\n", col)
	}

	res, err := linkSvc.Run(tbl, cands)
	var se *model.SchemaError
	if errors.As(err, &se) {
		fmt.Fprintln(out, "Missing required columns:")
		for _, col := range se.Missing {
			fmt.Fprintf(out, "- %s\n", col)
		}
		return err
	}
	if err != nil {
		return err
	}

	written, err := linkSvc.Write(output, res.Rows)
	if err != nil {
		return err
	}

	logger.Info().
		Str("input", input).
		Int("rows", len(tbl.Rows)).
		Int("enabling", res.EnablingRows).
		Int("dependent", res.DependentRows).
		Int("comparisons", res.Comparisons).
		Int("as_dependent", res.Count(model.CandidateAsDependent)).
		Int("as_enabling", res.Count(model.CandidateAsEnabling)).
		Dur("elapsed", time.Since(start)).
		Msg("linkage done")

	if !written {
		fmt.Fprintln(out, "No matches found with the specified similarity threshold.")
		return nil
	}
	fmt.Fprintf(out, "Filtered data has been saved to %s\n", output)
	return nil
}
