package reporting

import (
	"fmt"

	"bench-report/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeMalformedLine    = "RPT_1000"
	codeUnsortedInput    = "RPT_1001"
	codeBenchLogNotFound = "RPT_1002"
	codeValidationFailed = "RPT_1003"
	codeReportExists     = "RPT_1004"

	codeInternalBenchLogStoreFailed = "RPT_9000"
	codeInternalRenderFailed        = "RPT_9001"
	codeInternalReportStoreFailed   = "RPT_9002"
	codeInternalAggregationFailed   = "RPT_9003"
)

func errMalformedLine(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLine, cause.Error(), cause)
}

func errUnsortedInput(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsortedInput, cause.Error(), cause)
}

func errBenchLogNotFound(tableName string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeBenchLogNotFound, fmt.Sprintf("bench log %q not found", tableName), cause)
}

// errReportAlreadyExists is returned when overwrite is off and an artefact of the table exists.
func errReportAlreadyExists(tableName string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportExists, fmt.Sprintf("report for %q already exists", tableName), cause)
}

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errInternalBenchLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBenchLogStoreFailed, fmt.Errorf("benchLogStoreFailed: %w", cause))
}

func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalReportStoreFailed covers both the workbook and the JSON summary write.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errInternalAggregationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregationFailed, fmt.Errorf("aggregationFailed: %w", cause))
}
