package reporting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bench-report/internal/aggregators"
	"bench-report/internal/models"
	"bench-report/internal/shared/loggers"
	"bench-report/internal/shared/metrics"
	"bench-report/internal/shared/svcerrors"
	"bench-report/internal/shared/ulid"
	"bench-report/internal/sheets"
	"bench-report/internal/stores"
)

const (
	maxUploadBytes = 2 * 1024 * 1024
)

// Options tune one ReportService.
type Options struct {
	SheetName    string
	WriteSummary bool
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Generate reads the bench log stored under tableName, averages it and writes
	// <tableName>.xlsx (and <tableName>.summary.json when enabled).
	Generate(ctx context.Context, tableName string) (*models.Report, error)

	// Summarize averages an uploaded bench log without persisting anything.
	Summarize(ctx context.Context, r io.Reader) (*models.Report, error)
}

type reportService struct {
	logStore    stores.BenchLogStore
	reportStore stores.ReportStore
	aggregator  aggregators.Aggregator
	renderer    sheets.ReportRenderer
	newWorkbook sheets.WorkbookFactory
	options     Options
}

func NewReportService(
	logStore stores.BenchLogStore,
	reportStore stores.ReportStore,
	aggregator aggregators.Aggregator,
	renderer sheets.ReportRenderer,
	newWorkbook sheets.WorkbookFactory,
	options Options,
) ReportService {
	return &reportService{
		logStore:    logStore,
		reportStore: reportStore,
		aggregator:  aggregator,
		renderer:    renderer,
		newWorkbook: newWorkbook,
		options:     options,
	}
}

func (s *reportService) Generate(ctx context.Context, tableName string) (*models.Report, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldTableName, tableName).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg("started generating report")

	report, err := s.generate(ctx, runID, tableName)
	if err != nil {
		svcErr := asServiceError(err)
		metricReportsTotal.WithLabelValues(operationGenerate, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportsTotal.WithLabelValues(operationGenerate, metrics.ValueNoError).Inc()
	logger.Info().
		Int("rows", len(report.Rows)).
		Int("lines_read", report.LinesRead).
		Msg("report generated")
	return report, nil
}

func (s *reportService) generate(ctx context.Context, runID, tableName string) (*models.Report, error) {
	lines, err := s.logStore.ReadLines(ctx, tableName)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrBenchLogNotFound):
			return nil, errBenchLogNotFound(tableName, err)
		case errors.Is(err, stores.ErrBenchLogLineTooLong):
			return nil, errMalformedLine(err)
		default:
			return nil, errInternalBenchLogStoreFailed(err)
		}
	}

	result, err := s.aggregate(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := s.writeWorkbook(ctx, tableName, result); err != nil {
		return nil, err
	}

	report := newReport(runID, tableName, result)
	if s.options.WriteSummary {
		if _, err := s.reportStore.PutSummary(ctx, report); err != nil {
			return nil, reportStoreError(tableName, err)
		}
	}
	return report, nil
}

// writeWorkbook renders result onto a fresh workbook and persists it. The workbook is
// closed on every path.
func (s *reportService) writeWorkbook(ctx context.Context, tableName string, result *models.AggregateResult) error {
	workbook := s.newWorkbook()
	defer func() {
		if err := workbook.Close(); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	sheet, err := workbook.Sheet(s.options.SheetName)
	if err != nil {
		return errInternalRenderFailed(err)
	}
	if err := s.renderer.Render(sheet, result); err != nil {
		return errInternalRenderFailed(err)
	}

	putResult, err := s.reportStore.PutWorkbook(ctx, tableName, sheets.FileExtension, workbook)
	if err != nil {
		return reportStoreError(tableName, err)
	}
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldFileKey, putResult.FileKey).
		Int64("bytes", putResult.Size).
		Msg("workbook stored")
	return nil
}

func (s *reportService) Summarize(ctx context.Context, r io.Reader) (*models.Report, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	report, err := s.summarize(ctx, runID, r)
	if err != nil {
		svcErr := asServiceError(err)
		metricReportsTotal.WithLabelValues(operationSummarize, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportsTotal.WithLabelValues(operationSummarize, metrics.ValueNoError).Inc()
	return report, nil
}

func (s *reportService) summarize(ctx context.Context, runID string, r io.Reader) (*models.Report, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := readWithLimit(r, maxUploadBytes)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	result, err := s.aggregate(ctx, strings.Split(string(buf), "\n"))
	if err != nil {
		return nil, err
	}
	return newReport(runID, "", result), nil
}

// aggregate runs the aggregator and maps its failures to service errors.
func (s *reportService) aggregate(ctx context.Context, lines []string) (*models.AggregateResult, error) {
	result, err := s.aggregator.Aggregate(ctx, lines)
	if err == nil {
		return result, nil
	}

	var malformed *aggregators.MalformedLineError
	var unsorted *aggregators.UnsortedInputError
	switch {
	case errors.As(err, &malformed):
		return nil, errMalformedLine(err)
	case errors.As(err, &unsorted):
		return nil, errUnsortedInput(err)
	default:
		return nil, errInternalAggregationFailed(err)
	}
}

func reportStoreError(tableName string, err error) error {
	if errors.Is(err, stores.ErrReportAlreadyExists) {
		return errReportAlreadyExists(tableName, err)
	}
	return errInternalReportStoreFailed(err)
}

// readWithLimit reads up to limit+1 bytes from r and rejects anything larger than limit.
func readWithLimit(r io.Reader, limit int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(limit+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > limit {
		return nil, errValidationFailed(fmt.Sprintf("bench log too large: must be <= %d bytes", limit), nil)
	}
	return buf, nil
}

func newReport(runID, tableName string, result *models.AggregateResult) *models.Report {
	generatedAt, err := ulid.Time(runID)
	if err != nil {
		generatedAt = time.Now().UTC()
	}
	return &models.Report{
		RunID:           runID,
		TableName:       tableName,
		GeneratedAt:     generatedAt,
		AggregateResult: *result,
	}
}

func asServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	return svcerrors.NewInternalErrorUndefined(err)
}
