package activity

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/gabapcia/fantoken/internal/chainread"
	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
)

const (
	connectsMetricName = "fantoken.wallet.connects"
	queriesMetricName  = "fantoken.chain.queries"
)

type metrics struct {
	connects metric.Int64Counter
	queries  metric.Int64Counter
}

func newMetrics(meter metric.Meter) metrics {
	var (
		m   metrics
		err error
	)

	m.connects, err = meter.Int64Counter(connectsMetricName,
		metric.WithDescription("Wallet connection attempts by outcome."),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		logger.Warn(context.Background(), "failed to create metric", "metric.name", connectsMetricName, "error", err)
		m.connects = noop.Int64Counter{}
	}

	m.queries, err = meter.Int64Counter(queriesMetricName,
		metric.WithDescription("Chain reads by kind and outcome."),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		logger.Warn(context.Background(), "failed to create metric", "metric.name", queriesMetricName, "error", err)
		m.queries = noop.Int64Counter{}
	}

	return m
}

func (m metrics) recordConnect(ctx context.Context, err error) {
	m.connects.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", chainerr.Outcome(err)),
	))
}

func (m metrics) recordQuery(ctx context.Context, result chainread.Result, cached bool) {
	m.queries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", result.Kind.String()),
		attribute.String("outcome", chainerr.Outcome(result.Err)),
		attribute.Bool("cached", cached),
	))
}
