package http

import (
	"net/http"

	"bench-report/internal/reporting"
)

type summarizeReportHandler struct {
	reportService reporting.ReportService
}

func NewSummarizeReportHandler(reportService reporting.ReportService) AppHttpHandler {
	return &summarizeReportHandler{
		reportService: reportService,
	}
}

// Handle processes POST /reports: the body is a raw bench log, the response its averages.
func (h *summarizeReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Summarize(r.Context(), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set(headerRunID, report.RunID)
	return writeJSONResponse(w, http.StatusOK, report)
}
