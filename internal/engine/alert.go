package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/localflipper/internal/metrics"
	"github.com/donaldgifford/localflipper/internal/notify"
	"github.com/donaldgifford/localflipper/internal/store"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const (
	batchThreshold   = 5
	maxPendingAlerts = 200
)

// ProcessAlerts sends notifications for profitable deals that have not
// been alerted yet, then marks them as notified. Deals are grouped by
// search term; a group of five or more is sent as one batch. Deals whose
// notification fails stay pending and are retried on the next call. A rate
// limit from the notifier ends the pass early.
func ProcessAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	log *slog.Logger,
) error {
	pending, err := s.ListUnnotifiedDeals(ctx, maxPendingAlerts)
	if err != nil {
		return fmt.Errorf("listing pending deals: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	groups := groupBySearch(pending)
	for i, group := range groups {
		err := sendAlerts(ctx, s, n, group)
		if err == nil {
			continue
		}
		metrics.NotificationFailuresTotal.Inc()

		// Further posts would be rejected too; the rest wait for the next cycle.
		var rl *notify.RateLimitedError
		if errors.As(err, &rl) {
			if log != nil {
				log.Warn("notifier rate limited, deferring alerts",
					"retry_after", rl.RetryAfter,
					"groups_deferred", len(groups)-i,
				)
			}
			break
		}
		if log != nil {
			log.Error("sending deal alerts failed",
				"search", group[0].SearchTerm,
				"deals", len(group),
				"error", err,
			)
		}
	}

	return nil
}

// groupBySearch groups deals by search term, keeping first-seen order so
// alerts go out in the store's ranking order.
func groupBySearch(deals []domain.Deal) [][]domain.Deal {
	index := make(map[string]int)
	var groups [][]domain.Deal
	for i := range deals {
		key := deals[i].SearchTerm
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], deals[i])
	}
	return groups
}

func sendAlerts(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	deals []domain.Deal,
) error {
	if len(deals) >= batchThreshold {
		return sendBatch(ctx, s, n, deals)
	}

	for i := range deals {
		if err := sendSingle(ctx, s, n, &deals[i]); err != nil {
			return err
		}
	}

	return nil
}

func sendSingle(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	deal *domain.Deal,
) error {
	payload := notify.PayloadFromDeal(deal)

	if err := n.SendAlert(ctx, &payload); err != nil {
		return fmt.Errorf("sending alert: %w", err)
	}

	metrics.NotificationsSentTotal.Inc()

	return s.MarkDealsNotified(ctx, []string{deal.ID})
}

func sendBatch(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	deals []domain.Deal,
) error {
	payloads := make([]notify.AlertPayload, 0, len(deals))
	ids := make([]string, 0, len(deals))

	for i := range deals {
		payloads = append(payloads, notify.PayloadFromDeal(&deals[i]))
		ids = append(ids, deals[i].ID)
	}

	if err := n.SendBatchAlert(ctx, payloads, deals[0].SearchTerm); err != nil {
		return fmt.Errorf("sending batch alert: %w", err)
	}

	metrics.NotificationsSentTotal.Add(float64(len(ids)))

	return s.MarkDealsNotified(ctx, ids)
}
