package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/mootfed/moot/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("delivery")

var deliveryAttempts *prometheus.CounterVec

type deliverer struct {
	client http.Client
}

// NewDeliverer creates the outbound federation deliverer
func NewDeliverer() core.Deliverer {
	if deliveryAttempts == nil {
		deliveryAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moot_delivery_attempts_total",
			Help: "Total number of outbound activity deliveries",
		}, []string{"status"})
		prometheus.MustRegister(deliveryAttempts)
	}

	return &deliverer{
		client: http.Client{Timeout: defaultTimeout},
	}
}

// Deliver posts the activity document to a single inbox. Any response
// outside the 2xx range counts as a failed delivery.
func (d *deliverer) Deliver(ctx context.Context, activity core.ActivityDocument, inboxURI string) error {
	ctx, span := tracer.Start(ctx, "Delivery.Deliver")
	defer span.End()

	payload, err := json.Marshal(activity)
	if err != nil {
		span.RecordError(err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", inboxURI, bytes.NewBuffer(payload))
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("Content-Type", "application/activity+json")
	req.Header.Set("Accept", "application/activity+json")
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := d.client.Do(req)
	if err != nil {
		deliveryAttempts.WithLabelValues("error").Inc()
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		deliveryAttempts.WithLabelValues("rejected").Inc()
		return errors.Errorf("inbox %s answered %s", inboxURI, resp.Status)
	}

	deliveryAttempts.WithLabelValues("ok").Inc()
	return nil
}
