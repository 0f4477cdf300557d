package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// AcknowledgeStalledFlag clears the dedup flag for the case's
// (status, threshold) bucket, so the next scan notifies again if the
// case is still stalled.
func (s *Service) AcknowledgeStalledFlag(ctx context.Context, caseNumber int64, statusCode string) error {
	if caseNumber <= 0 {
		return domain.NewValidationError("case_number", "required")
	}
	if statusCode == "" {
		return domain.NewValidationError("status_code", "required")
	}

	if err := s.flags.Acknowledge(ctx, caseNumber, statusCode, s.thresholdDays); err != nil {
		return fmt.Errorf("acknowledge stalled flag: %w", err)
	}

	s.log.InfoContext(ctx, "stalled flag acknowledged",
		slog.Int64("case_number", caseNumber),
		slog.String("status_code", statusCode),
	)
	return nil
}
