// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/models"
)

const (
	countsSheet    = "Counts"
	selectionSheet = "Selection"
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportCountsCSV downloads the filtered count table behind the categorical
// chart as CSV. It takes the same query parameters as ChartCategorical.
//
// @Summary Export count table as CSV
// @Tags Export
// @Produce text/csv
// @Param feature query string false "Categorical feature"
// @Param categories query string false "Comma-separated categories"
// @Param start_year query int false "Start year" minimum(1800) maximum(2100)
// @Param end_year query int false "End year" minimum(1800) maximum(2100)
// @Success 200 {file} file "release_year, feature, count rows"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /export/counts.csv [get]
func (h *Handler) ExportCountsCSV(w http.ResponseWriter, r *http.Request) {
	req, result, ok := h.exportCounts(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := writeCountsCSV(&buf, req.Feature, result.Counts); err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeExport, "Failed to generate CSV", err)
		return
	}

	writeDownload(w, r, "text/csv; charset=utf-8", exportFilename(req, "csv"), buf.Bytes())
}

// writeCountsCSV encodes the count table with a release_year, feature,
// count header. It stops at the first failed write.
func writeCountsCSV(out io.Writer, feature string, counts dashboard.CountTable) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"release_year", feature, "count"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range counts.Rows {
		if err := cw.Write([]string{strconv.Itoa(row.ReleaseYear), row.Category, strconv.Itoa(row.Count)}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCountsXLSX downloads the same table as an Excel workbook with a
// Counts sheet and a Selection sheet recording the query.
//
// @Summary Export count table as XLSX
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param feature query string false "Categorical feature"
// @Param categories query string false "Comma-separated categories"
// @Param start_year query int false "Start year" minimum(1800) maximum(2100)
// @Param end_year query int false "End year" minimum(1800) maximum(2100)
// @Success 200 {file} file "Workbook with Counts and Selection sheets"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /export/counts.xlsx [get]
func (h *Handler) ExportCountsXLSX(w http.ResponseWriter, r *http.Request) {
	req, result, ok := h.exportCounts(w, r)
	if !ok {
		return
	}

	data, err := buildCountsWorkbook(req, result.Counts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeExport, "Failed to generate spreadsheet", err)
		return
	}

	writeDownload(w, r, xlsxMediaType, exportFilename(req, "xlsx"), data)
}

// exportCounts parses the selection and computes the count table. It writes
// the error response itself and reports ok=false on failure.
func (h *Handler) exportCounts(w http.ResponseWriter, r *http.Request) (*CategoricalRequest, *dashboard.CategoricalResult, bool) {
	if h.svc == nil {
		respondDomainError(w, ErrServiceUnavailable)
		return nil, nil, false
	}

	req, apiErr := h.parseCategoricalRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return nil, nil, false
	}

	result, err := h.categorical(req)
	if err != nil {
		respondDomainError(w, err)
		return nil, nil, false
	}
	return req, result, true
}

func buildCountsWorkbook(req *CategoricalRequest, counts dashboard.CountTable) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", countsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(countsSheet)
	if err != nil {
		return nil, fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", []interface{}{"release_year", req.Feature, "count"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range counts.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, []interface{}{row.ReleaseYear, row.Category, row.Count}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush counts: %w", err)
	}

	if _, err := f.NewSheet(selectionSheet); err != nil {
		return nil, fmt.Errorf("add selection sheet: %w", err)
	}
	selection := [][]interface{}{
		{"feature", req.Feature},
		{"mode", counts.Mode},
		{"start_year", req.StartYear},
		{"end_year", req.EndYear},
		{"categories", strings.Join(req.Categories, ", ")},
	}
	for i, kv := range selection {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(selectionSheet, cell, &kv); err != nil {
			return nil, fmt.Errorf("write selection: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportFilename(req *CategoricalRequest, ext string) string {
	return fmt.Sprintf("counts_%s_%d-%d.%s", req.Feature, req.StartYear, req.EndYear, ext)
}

func writeDownload(w http.ResponseWriter, r *http.Request, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("file", filename).Msg("Failed to write export")
	}
}
