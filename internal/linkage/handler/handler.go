package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"component-linker/internal/config"
	"component-linker/internal/linkage/candidates"
	"component-linker/internal/linkage/model"
	linkSvc "component-linker/internal/linkage/service"
	"component-linker/internal/metrics"
	"component-linker/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Linkage возвращает http.HandlerFunc для r.Post("/linkage", ...).
// Поля формы: file (обязательно), candidates (YAML, опционально), header_row, format=xlsx|json.
// defaults — кандидаты, если в форме нет своего списка. m может быть nil.
func Linkage(cfg config.Config, logger zerolog.Logger, m *metrics.Metrics, defaults []model.Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		if err := r.ParseMultipartForm(cfg.MaxUploadBytes()); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
				return
			}
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		defer r.MultipartForm.RemoveAll()

		format := strings.ToLower(strings.TrimSpace(r.FormValue("format")))
		if format == "" {
			format = "xlsx"
		}
		if format != "xlsx" && format != "json" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		cands := defaults
		if cf, _, err := r.FormFile("candidates"); err == nil {
			cands, err = candidates.Parse(cf)
			cf.Close()
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "bad candidates part: "+err.Error())
			return
		}

		tbl, err := linkSvc.Load(file, header.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Debug().Strs("columns", tbl.Columns).Int("rows", len(tbl.Rows)).Msg("input loaded")

		res, err := linkSvc.Run(tbl, cands)
		if m != nil {
			m.ObserveRun(res, err)
		}
		var se *model.SchemaError
		if errors.As(err, &se) {
			log.Warn().Strs("missing", se.Missing).Msg("schema error")
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":   se.Error(),
				"missing": se.Missing,
				"columns": tbl.Columns,
			})
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("linkage run")
			writeError(w, http.StatusInternalServerError, "internal")
			return
		}

		log.Info().
			Str("file", header.Filename).
			Int("candidates", len(cands)).
			Int("enabling", res.EnablingRows).
			Int("dependent", res.DependentRows).
			Int("comparisons", res.Comparisons).
			Int("matches", len(res.Rows)).
			Dur("elapsed", time.Since(start)).
			Msg("linkage done")

		if format == "json" {
			if res.Rows == nil {
				res.Rows = []model.LinkageRow{}
			}
			writeJSON(w, http.StatusOK, res)
			return
		}

		if len(res.Rows) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var buf bytes.Buffer
		if err := linkSvc.Encode(&buf, res.Rows); err != nil {
			log.Error().Err(err).Msg("encode xlsx")
			writeError(w, http.StatusInternalServerError, "internal")
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, config.OutputFile))
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	}
}
