package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ScanResult summarizes one stalled-case sweep.
type ScanResult struct {
	Scanned      int
	FlaggedCases []int64
	Notified     int
}

// ScanStalledCases finds cases whose current status predates the
// threshold, flags each one once, and notifies its active assignees.
// A failure on one case is logged and does not stop the sweep.
func (s *Service) ScanStalledCases(ctx context.Context) (*ScanResult, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.thresholdDays)

	entries, err := s.statuses.Stalled(ctx, cutoff, excludedStatus, s.thresholdDays, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("scan stalled cases: %w", err)
	}

	result := &ScanResult{Scanned: len(entries)}

	for _, entry := range entries {
		newlyFlagged, err := s.flags.TryFlagStalled(ctx, entry.CaseNumber, entry.StatusCode, s.thresholdDays)
		if err != nil {
			s.log.WarnContext(ctx, "flag stalled case failed",
				slog.Int64("case_number", entry.CaseNumber),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !newlyFlagged {
			continue
		}
		result.FlaggedCases = append(result.FlaggedCases, entry.CaseNumber)

		assignees, err := s.assignments.ActiveAssignees(ctx, entry.CaseNumber, "", "")
		if err != nil {
			s.log.WarnContext(ctx, "list assignees failed",
				slog.Int64("case_number", entry.CaseNumber),
				slog.String("error", err.Error()),
			)
			continue
		}

		message := fmt.Sprintf(
			"El caso %d lleva más de %d días en estado %s sin movimiento.",
			entry.CaseNumber, s.thresholdDays, entry.StatusCode,
		)
		for _, personID := range assignees {
			if err := s.notifications.Notify(ctx, personID, message, entry.CaseNumber); err != nil {
				s.log.WarnContext(ctx, "notify assignee failed",
					slog.Int64("case_number", entry.CaseNumber),
					slog.String("person_id", personID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			result.Notified++
		}
	}

	s.log.InfoContext(ctx, "stalled-case scan finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("flagged", len(result.FlaggedCases)),
		slog.Int("notified", result.Notified),
	)

	return result, nil
}
