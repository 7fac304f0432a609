// internal/lead/service.go
//
// Lead submission workflow: validate, persist, notify.
//
// Workflow
// --------
//  1. Validate the lead; a rule violation rejects the submission.
//  2. Insert the lead; a database failure rejects the submission.
//  3. Fire the notifier.  Notification failure is logged and counted
//     but the caller still sees success: the lead is safely stored.
package lead

import (
	"context"

	"go.uber.org/zap"

	"github.com/wasatchbuilt/siteengine/internal/metrics"
)

// Service coordinates the submit path.  Any field but repo may be nil.
type Service struct {
	repo     *Repository
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewService(repo *Repository, notifier Notifier, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Submit runs the full workflow and returns the stored lead's ID.
func (s *Service) Submit(ctx context.Context, l *Lead) (int64, error) {
	if err := Validate(l); err != nil {
		metrics.LeadRejectTotal.Inc()
		return 0, err
	}

	id, err := s.repo.Insert(ctx, l)
	if err != nil {
		metrics.LeadRejectTotal.Inc()
		return 0, err
	}
	metrics.LeadSubmitTotal.Inc()

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, l); err != nil {
			metrics.LeadNotifyErrorTotal.Inc()
			s.log.Warnw("lead webhook failed", "lead_id", id, "err", err)
		}
	}
	return id, nil
}
