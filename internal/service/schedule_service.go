package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
	"github.com/noah-isme/student-jobs-api/pkg/export"
)

type scheduleEventLister interface {
	ListAllByUser(ctx context.Context, userID string, from, to time.Time) ([]models.ScheduleEvent, error)
}

type availabilityLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.AvailabilityWindow, error)
}

// ScheduleService loads a user's schedule snapshot and runs the analysis
// engine over it. It holds no per-call state; every invocation builds the
// report fresh and nothing is cached or persisted.
type ScheduleService struct {
	events       scheduleEventLister
	availability availabilityLister
	analyzer     *analysis.Analyzer
	metrics      *MetricsService
	logger       *zap.Logger
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(events scheduleEventLister, availability availabilityLister, analyzer *analysis.Analyzer, metrics *MetricsService, logger *zap.Logger) *ScheduleService {
	if analyzer == nil {
		analyzer = analysis.New(analysis.Config{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		events:       events,
		availability: availability,
		analyzer:     analyzer,
		metrics:      metrics,
		logger:       logger,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
	}
}

// Analyze assembles the analysis report for one user over a date range.
func (s *ScheduleService) Analyze(ctx context.Context, userID string, from, to time.Time) (*analysis.Report, error) {
	start := time.Now()

	events, err := s.events.ListAllByUser(ctx, userID, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}
	windows, err := s.availability.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load availability")
	}

	engineEvents := make([]analysis.Event, 0, len(events))
	for _, ev := range events {
		engineEvents = append(engineEvents, analysis.Event{
			ID:        ev.ID,
			Title:     ev.Title,
			Category:  analysis.Category(ev.Category),
			Date:      ev.Date,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		})
	}
	engineWindows := make([]analysis.Window, 0, len(windows))
	for _, win := range windows {
		weekday, ok := models.ParseWeekday(win.Weekday)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", win.Weekday))
		}
		end := ""
		if win.EndTime != nil {
			end = *win.EndTime
		}
		engineWindows = append(engineWindows, analysis.Window{
			Weekday:   weekday,
			StartTime: win.StartTime,
			EndTime:   end,
		})
	}

	report, err := s.analyzer.Analyze(engineEvents, engineWindows, from, to)
	if err != nil {
		return nil, mapEngineError(err)
	}

	s.metrics.ObserveAnalysis(time.Since(start))
	s.logger.Debug("schedule analysis complete",
		zap.String("user_id", userID),
		zap.Int("conflicts", len(report.Conflicts)),
		zap.Int("score", report.Balance.Score),
	)
	return report, nil
}

// Export renders the report as CSV or PDF and returns the bytes with their
// content type.
func (s *ScheduleService) Export(ctx context.Context, userID string, from, to time.Time, format string) ([]byte, string, error) {
	report, err := s.Analyze(ctx, userID, from, to)
	if err != nil {
		return nil, "", err
	}

	dataset := reportDataset(report)
	switch strings.ToLower(format) {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		title := fmt.Sprintf("Schedule analysis %s to %s", report.RangeStart, report.RangeEnd)
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format, expected csv or pdf")
	}
}

// reportDataset flattens the report into the tabular shape the exporters
// consume.
func reportDataset(report *analysis.Report) export.Dataset {
	headers := []string{"section", "item", "detail", "value"}
	rows := []map[string]string{
		{"section": "score", "item": "balance", "detail": "final", "value": fmt.Sprintf("%d", report.Balance.Score)},
		{"section": "score", "item": "balance", "detail": "raw_total", "value": fmt.Sprintf("%d", report.Balance.Breakdown.Total())},
		{"section": "stats", "item": "work", "detail": "hours", "value": fmt.Sprintf("%.2f", report.Stats.WorkHours)},
		{"section": "stats", "item": "study", "detail": "hours", "value": fmt.Sprintf("%.2f", report.Stats.StudyHours)},
		{"section": "stats", "item": "rest", "detail": "percent", "value": fmt.Sprintf("%.2f", report.Stats.RestPercent)},
	}
	for _, c := range report.Conflicts {
		rows = append(rows, map[string]string{
			"section": "conflict",
			"item":    c.Date,
			"detail":  fmt.Sprintf("%s / %s", c.EventA.Title, c.EventB.Title),
			"value":   fmt.Sprintf("%d min, %s", c.OverlapMinutes, c.Severity),
		})
	}
	for _, d := range report.OverloadedDays {
		rows = append(rows, map[string]string{
			"section": "overload",
			"item":    d.Date,
			"detail":  string(d.Level),
			"value":   fmt.Sprintf("%.1f h", d.TotalHours),
		})
	}
	for _, slot := range report.FreeSlots {
		rows = append(rows, map[string]string{
			"section": "free_slot",
			"item":    slot.Weekday,
			"detail":  fmt.Sprintf("%s-%s", slot.Start, slot.End),
			"value":   fmt.Sprintf("%.1f h", slot.DurationHours),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
