// Package importer bulk-loads leads from CSV and XLSX files. Every row
// goes through the same ingestion pipeline as a webhook submission, so
// imported leads get the same dedup, source normalization and
// auto-assignment behavior.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/ingest"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/metrics"
)

// Service handles bulk import of leads
type Service struct {
	ingestor *ingest.Ingestor
	log      logger.Logger
	metrics  *metrics.Metrics
}

// NewService creates a new import service
func NewService(ingestor *ingest.Ingestor, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{ingestor: ingestor, log: log}
}

// WithMetrics attaches a metrics recorder.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Result holds the outcome of an import operation
type Result struct {
	TotalRows    int        `json:"total_rows"`
	CreatedCount int        `json:"created_count"`
	UpdatedCount int        `json:"updated_count"`
	FailureCount int        `json:"failure_count"`
	Errors       []RowError `json:"errors,omitempty"`
	Duration     string     `json:"duration"`
}

// RowError represents an error on a single row
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Config holds import limits
type Config struct {
	MaxRows   int    // Maximum data rows per import (0 = default)
	MaxErrors int    // Stop collecting error detail past this many (0 = default)
	Source    string // Raw source tag stamped on rows without one
}

// DefaultConfig returns default import configuration
func DefaultConfig() Config {
	return Config{
		MaxRows:   10000,
		MaxErrors: 100,
		Source:    "IMPORT",
	}
}

// ImportCSV imports leads from a CSV stream. The first row is the
// header; column names go through the same alias resolution as webhook
// payload keys.
func (s *Service) ImportCSV(ctx context.Context, workspaceID int, r io.Reader, config Config) (*Result, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	maxRows := config.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultConfig().MaxRows
	}

	var rows [][]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(rows) >= maxRows {
			return nil, domain.NewValidationError(fmt.Sprintf("import exceeds the %d row limit", maxRows))
		}
		rows = append(rows, record)
	}

	return s.importRows(ctx, workspaceID, headers, rows, config)
}

// ImportXLSX imports leads from the first sheet of an XLSX workbook.
func (s *Service) ImportXLSX(ctx context.Context, workspaceID int, r io.Reader, config Config) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX sheet: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("XLSX sheet is empty")
	}

	maxRows := config.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultConfig().MaxRows
	}
	if len(allRows)-1 > maxRows {
		return nil, domain.NewValidationError(fmt.Sprintf("import exceeds the %d row limit", maxRows))
	}

	return s.importRows(ctx, workspaceID, allRows[0], allRows[1:], config)
}

func (s *Service) importRows(ctx context.Context, workspaceID int, headers []string, rows [][]string, config Config) (*Result, error) {
	startTime := time.Now()

	maxErrors := config.MaxErrors
	if maxErrors <= 0 {
		maxErrors = DefaultConfig().MaxErrors
	}
	sourceTag := config.Source
	if sourceTag == "" {
		sourceTag = DefaultConfig().Source
	}

	cleanHeaders := make([]string, len(headers))
	for i, h := range headers {
		cleanHeaders[i] = strings.TrimSpace(h)
	}

	result := &Result{TotalRows: len(rows)}

	for i, record := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowNum := i + 2 // header was row 1

		payload := rowPayload(cleanHeaders, record, sourceTag)
		if len(payload) == 0 {
			result.FailureCount++
			result.addError(maxErrors, rowNum, "empty row")
			s.metrics.RecordImportedLead("failed")
			continue
		}

		res, err := s.ingestor.Ingest(ctx, workspaceID, payload)
		if err != nil {
			result.FailureCount++
			result.addError(maxErrors, rowNum, err.Error())
			s.metrics.RecordImportedLead("failed")
			continue
		}

		switch res.Action {
		case ingest.ActionCreated:
			result.CreatedCount++
			s.metrics.RecordImportedLead("created")
		case ingest.ActionUpdated:
			result.UpdatedCount++
			s.metrics.RecordImportedLead("updated")
		}
	}

	result.Duration = time.Since(startTime).String()

	s.log.Info("lead import finished",
		"workspace_id", workspaceID,
		"total", result.TotalRows,
		"created", result.CreatedCount,
		"updated", result.UpdatedCount,
		"failed", result.FailureCount,
	)

	return result, nil
}

func (r *Result) addError(maxErrors, row int, message string) {
	if len(r.Errors) >= maxErrors {
		return
	}
	r.Errors = append(r.Errors, RowError{Row: row, Message: message})
}

// rowPayload turns one sheet row into the map form the ingestor
// expects. Cells without a header, and headers without a cell, are
// dropped.
func rowPayload(headers, record []string, sourceTag string) map[string]interface{} {
	payload := make(map[string]interface{})
	for i, header := range headers {
		if header == "" || i >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[i])
		if value == "" {
			continue
		}
		payload[header] = value
	}
	if len(payload) == 0 {
		return nil
	}
	if _, ok := payload["source"]; !ok {
		payload["source"] = sourceTag
	}
	return payload
}
