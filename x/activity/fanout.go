package activity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/mootfed/moot/core"
)

// DeliverToFollowers relays an activity to the inbox of every follower of
// the group except the actor the activity originated from.
func (s *service) DeliverToFollowers(ctx context.Context, document core.ActivityDocument, group core.Actor) error {
	ctx, span := tracer.Start(ctx, "Activity.Service.DeliverToFollowers")
	defer span.End()

	followers, err := s.actor.FollowerURIs(ctx, group.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	inboxes := make([]string, 0, len(followers))
	for _, follower := range followers {
		if follower == document.Actor {
			continue
		}
		inboxes = append(inboxes, core.InboxURI(follower))
	}

	return s.deliverTo(ctx, document, inboxes)
}

// deliverTo posts the activity to each inbox independently. A failing
// target never cancels the others; the caller sees the aggregate once all
// attempts have settled.
func (s *service) deliverTo(ctx context.Context, document core.ActivityDocument, inboxURIs []string) error {
	ctx, span := tracer.Start(ctx, "Activity.Service.deliverTo")
	defer span.End()

	if len(inboxURIs) == 0 {
		return nil
	}

	results := make([]error, len(inboxURIs))
	var wg sync.WaitGroup
	for i, inboxURI := range inboxURIs {
		wg.Add(1)
		go func(i int, inboxURI string) {
			defer wg.Done()
			results[i] = s.deliverer.Deliver(ctx, document, inboxURI)
		}(i, inboxURI)
	}
	wg.Wait()

	failed := 0
	for i, err := range results {
		if err == nil {
			continue
		}
		failed++
		slog.ErrorContext(
			ctx, "fail to deliver activity",
			slog.String("inbox", inboxURIs[i]),
			slog.String("error", err.Error()),
			slog.String("module", "activity"),
		)
	}

	if failed > 0 {
		return errors.Errorf("delivery failed for %d of %d inboxes", failed, len(inboxURIs))
	}

	return nil
}
