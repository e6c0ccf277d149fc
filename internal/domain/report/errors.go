package report

import "errors"

var (
	ErrNoActiveEmployees      = errors.New("no active employees found for the company")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
