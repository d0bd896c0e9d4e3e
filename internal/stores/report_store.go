package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"bench-report/internal/models"
	"bench-report/internal/shared/filestorages"
)

const (
	summaryExtension = ".summary.json"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
)

// ReportStore publishes report artefacts next to the bench log they were built from:
//
//	<table>            bench log (input)
//	<table>.xlsx       workbook
//	<table>.summary.json
//
// Re-running a report replaces its artefacts, unless the store was created without
// overwrite: then an existing artefact fails the put with ErrReportAlreadyExists.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	PutWorkbook(ctx context.Context, tableName string, extension string, workbook io.WriterTo) (*filestorages.PutResult, error)
	PutSummary(ctx context.Context, report *models.Report) (*filestorages.PutResult, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	putOptions  filestorages.PutOptions
}

func NewReportStore(fileStorage filestorages.FileStorage, overwrite bool) ReportStore {
	return &reportStore{
		fileStorage: fileStorage,
		putOptions:  filestorages.PutOptions{AllowOverwrite: overwrite},
	}
}

func (s *reportStore) PutWorkbook(ctx context.Context, tableName string, extension string, workbook io.WriterTo) (*filestorages.PutResult, error) {
	var buf bytes.Buffer
	if _, err := workbook.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	key := tableName + extension
	result, err := s.fileStorage.Put(ctx, key, &buf, s.putOptions)
	if err != nil {
		return nil, putError("workbook", key, err)
	}
	return result, nil
}

func (s *reportStore) PutSummary(ctx context.Context, report *models.Report) (*filestorages.PutResult, error) {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report summary: %w", err)
	}

	key := report.TableName + summaryExtension
	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), s.putOptions)
	if err != nil {
		return nil, putError("report summary", key, err)
	}
	return result, nil
}

func putError(artefact, key string, err error) error {
	if errors.Is(err, filestorages.ErrFileAlreadyExists) {
		return fmt.Errorf("%w: %s", ErrReportAlreadyExists, key)
	}
	return fmt.Errorf("failed to put %s: %w", artefact, err)
}
