// Package export renders the archived job history as XLSX workbooks.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"mediafetch/internal/repository"
)

// Service is a tiny façade over the job archive that produces XLSX bytes.
type Service struct {
	jobsRepo repository.JobRepository
	logger   *slog.Logger
}

func NewService(jobsRepo repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, logger: logger}
}

// ExportJobsXLSX returns a workbook of archived jobs for the date window.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> the whole archive.
func (s *Service) ExportJobsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		now := time.Now().UTC()
		t := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	jobs, err := s.jobsRepo.ListJobs(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Submitted",
		"Finished",
		"Platform",
		"Title",
		"Status",
		"Error Kind",
		"Error Message",
		"Artifact Path",
		"Artifact Bytes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, job := range jobs {
		finished := ""
		if job.FinishedAt != nil {
			finished = job.FinishedAt.UTC().Format(time.RFC3339)
		}
		values := []any{
			job.ID.String(),
			job.CreatedAt.UTC().Format(time.RFC3339),
			finished,
			job.Platform,
			deref(job.Title),
			job.Status,
			deref(job.ErrorKind),
			deref(job.ErrorMessage),
			deref(job.ResultPath),
			job.ResultBytes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	s.logger.Info("job history exported",
		"rows", len(jobs),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
