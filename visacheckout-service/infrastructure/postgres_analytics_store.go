package infrastructure

import (
	"context"
	"time"

	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const analyticsSchema = `
	CREATE TABLE IF NOT EXISTS visa_checkout_analytics_events (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS visa_checkout_analytics_events_recorded_at_idx
		ON visa_checkout_analytics_events (recorded_at)`

// PostgresAnalyticsEventStore implements AnalyticsEventStore using PostgreSQL
type PostgresAnalyticsEventStore struct {
	db *sqlx.DB
}

// NewPostgresAnalyticsEventStore creates a new PostgresAnalyticsEventStore
func NewPostgresAnalyticsEventStore(db *sqlx.DB) *PostgresAnalyticsEventStore {
	return &PostgresAnalyticsEventStore{db: db}
}

// postgresAnalyticsEvent represents an analytics event in database
type postgresAnalyticsEvent struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	RecordedAt time.Time `db:"recorded_at"`
}

// EnsureSchema creates the analytics table when missing
func (s *PostgresAnalyticsEventStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, analyticsSchema); err != nil {
		return errors.Wrap(err, "failed to create analytics schema")
	}
	return nil
}

// Append queues an analytics event
func (s *PostgresAnalyticsEventStore) Append(ctx context.Context, event *domain.AnalyticsEvent) error {
	query := `
		INSERT INTO visa_checkout_analytics_events (id, name, recorded_at)
		VALUES (:id, :name, :recorded_at)`

	_, err := s.db.NamedExecContext(ctx, query, toPostgresAnalyticsEvent(event))
	if err != nil {
		return errors.Wrap(err, "failed to insert analytics event")
	}
	return nil
}

// Pending returns the oldest queued events, up to limit
func (s *PostgresAnalyticsEventStore) Pending(ctx context.Context, limit int) ([]*domain.AnalyticsEvent, error) {
	query := `
		SELECT id, name, recorded_at
		FROM visa_checkout_analytics_events
		ORDER BY recorded_at ASC
		LIMIT $1`

	var rows []postgresAnalyticsEvent
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, errors.Wrap(err, "failed to select pending analytics events")
	}

	result := make([]*domain.AnalyticsEvent, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

// Delete removes flushed events
func (s *PostgresAnalyticsEventStore) Delete(ctx context.Context, ids []models.ID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM visa_checkout_analytics_events WHERE id IN (?)`, models.Strings(ids))
	if err != nil {
		return errors.Wrap(err, "failed to build delete query")
	}

	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "failed to delete analytics events")
	}
	return nil
}

func toPostgresAnalyticsEvent(event *domain.AnalyticsEvent) *postgresAnalyticsEvent {
	return &postgresAnalyticsEvent{
		ID:         event.ID.String(),
		Name:       event.Name,
		RecordedAt: event.Timestamp,
	}
}

func (e *postgresAnalyticsEvent) toDomain() *domain.AnalyticsEvent {
	return &domain.AnalyticsEvent{
		ID:        models.ID(e.ID),
		Name:      e.Name,
		Timestamp: e.RecordedAt.UTC(),
	}
}
