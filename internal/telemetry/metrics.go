package telemetry

import (
	"context"
	"database/sql"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Business metrics
	AdmissionsTotal  metric.Int64Counter
	DischargesTotal  metric.Int64Counter
	EventsPublished  metric.Int64Counter

	// Auth metrics
	AuthFailuresTotal       metric.Int64Counter
	PermissionCheckDuration metric.Float64Histogram
}

// InitMetrics initializes all custom metrics. When db is non-nil an
// observable gauge reporting the current vacant bed count is registered.
func InitMetrics(db *sql.DB) (*Metrics, error) {
	meter := otel.Meter("github.com/Vaidyula-Sanjana/Hospital-Management-System")

	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	admissionsTotal, err := meter.Int64Counter(
		"hospital_admissions_total",
		metric.WithDescription("Total number of patient admissions"),
		metric.WithUnit("{admission}"),
	)
	if err != nil {
		return nil, err
	}

	dischargesTotal, err := meter.Int64Counter(
		"hospital_discharges_total",
		metric.WithDescription("Total number of patient discharges"),
		metric.WithUnit("{discharge}"),
	)
	if err != nil {
		return nil, err
	}

	eventsPublished, err := meter.Int64Counter(
		"hospital_events_published_total",
		metric.WithDescription("Total number of events published to the broker"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	authFailuresTotal, err := meter.Int64Counter(
		"hospital_auth_failures_total",
		metric.WithDescription("Total number of authentication failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	permissionCheckDuration, err := meter.Float64Histogram(
		"permission_check_duration_ms",
		metric.WithDescription("Permission check duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	if db != nil {
		vacantBeds, err := meter.Int64ObservableGauge(
			"hospital_beds_vacant",
			metric.WithDescription("Current number of vacant beds"),
			metric.WithUnit("{bed}"),
		)
		if err != nil {
			return nil, err
		}
		_, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
			var count int64
			if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM beds WHERE status = 'Vacant'").Scan(&count); err != nil {
				return err
			}
			o.ObserveInt64(vacantBeds, count)
			return nil
		}, vacantBeds)
		if err != nil {
			return nil, err
		}
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:       httpRequestsTotal,
		HTTPDurationMs:          httpDurationMs,
		AdmissionsTotal:         admissionsTotal,
		DischargesTotal:         dischargesTotal,
		EventsPublished:         eventsPublished,
		AuthFailuresTotal:       authFailuresTotal,
		PermissionCheckDuration: permissionCheckDuration,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordAdmission records a patient admission metric
func (m *Metrics) RecordAdmission(ctx context.Context, department string) {
	if m == nil {
		return
	}
	m.AdmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("department", department),
	))
}

// RecordDischarge records a patient discharge metric
func (m *Metrics) RecordDischarge(ctx context.Context) {
	if m == nil {
		return
	}
	m.DischargesTotal.Add(ctx, 1)
}

// RecordEventPublished records a broker publish metric
func (m *Metrics) RecordEventPublished(ctx context.Context, routingKey string) {
	if m == nil {
		return
	}
	m.EventsPublished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("routing_key", routingKey),
	))
}

// RecordAuthFailure records an authentication failure metric
func (m *Metrics) RecordAuthFailure(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.AuthFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordPermissionCheck records a permission check duration metric
func (m *Metrics) RecordPermissionCheck(ctx context.Context, permission string, durationMs float64, allowed bool) {
	if m == nil {
		return
	}
	m.PermissionCheckDuration.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("permission", permission),
		attribute.Bool("allowed", allowed),
	))
}
