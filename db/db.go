package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"finaura/api/logger"
	"finaura/api/models"
	"finaura/api/store"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// SnapshotStore assembles a snapshot from the user_profiles, subscriptions,
// gig_opportunities and roommate_ledger tables (see schema.sql).
type SnapshotStore struct {
	db        *sql.DB
	profileID string
}

// Open connects to PostgreSQL and verifies the connection.
func Open(dbURL, profileID string) (*SnapshotStore, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database url not set")
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	logger.Get().Info("connected to PostgreSQL", zap.String("profile_id", profileID))
	return &SnapshotStore{db: conn, profileID: profileID}, nil
}

var _ store.Provider = (*SnapshotStore)(nil)

func (s *SnapshotStore) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	record, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.subscriptions(ctx)
	if err != nil {
		return nil, s.unavailable("subscriptions", err)
	}
	gigs, err := s.payloads(ctx, `SELECT payload FROM gig_opportunities WHERE profile_id = $1 ORDER BY position`)
	if err != nil {
		return nil, s.unavailable("gig_opportunities", err)
	}
	roommates, err := s.payloads(ctx, `SELECT payload FROM roommate_ledger WHERE profile_id = $1 ORDER BY position`)
	if err != nil {
		return nil, s.unavailable("roommate_ledger", err)
	}

	snapshot := &store.SnapshotRecord{
		Profile:       record,
		Subscriptions: subs,
	}
	for _, g := range gigs {
		snapshot.Gigs = append(snapshot.Gigs, models.GigOpportunity(g))
	}
	for _, r := range roommates {
		snapshot.Roommates = append(snapshot.Roommates, models.RoommateLedgerEntry(r))
	}
	return snapshot.ToSnapshot()
}

func (s *SnapshotStore) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *SnapshotStore) unavailable(table string, err error) error {
	logger.Get().Error("failed to query snapshot table",
		zap.String("table", table),
		zap.String("profile_id", s.profileID),
		zap.Error(err))
	return fmt.Errorf("%w: querying %s: %v", models.ErrMissingProfileData, table, err)
}

// profileRow holds the nullable columns of user_profiles.
type profileRow struct {
	name           sql.NullString
	currentBalance sql.NullFloat64
	daysLeft       sql.NullInt64
	hourlyWage     sql.NullFloat64
	mood           sql.NullString
	spendingDNA    sql.NullString
}

func (r profileRow) record() *store.ProfileRecord {
	rec := &store.ProfileRecord{}
	if r.name.Valid {
		rec.Name = &r.name.String
	}
	if r.currentBalance.Valid {
		rec.CurrentBalance = &r.currentBalance.Float64
	}
	if r.daysLeft.Valid {
		days := int(r.daysLeft.Int64)
		rec.DaysLeft = &days
	}
	if r.hourlyWage.Valid {
		rec.HourlyWage = &r.hourlyWage.Float64
	}
	if r.mood.Valid {
		rec.Mood = &r.mood.String
	}
	if r.spendingDNA.Valid {
		rec.SpendingDNA = &r.spendingDNA.String
	}
	return rec
}

func (s *SnapshotStore) profile(ctx context.Context) (*store.ProfileRecord, error) {
	query := `
		SELECT name, current_balance, days_left, hourly_wage, mood, spending_dna
		FROM user_profiles WHERE id = $1
	`
	var row profileRow
	err := s.db.QueryRowContext(ctx, query, s.profileID).Scan(
		&row.name,
		&row.currentBalance,
		&row.daysLeft,
		&row.hourlyWage,
		&row.mood,
		&row.spendingDNA,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no profile %q", models.ErrMissingProfileData, s.profileID)
		}
		return nil, s.unavailable("user_profiles", err)
	}
	return row.record(), nil
}

func (s *SnapshotStore) subscriptions(ctx context.Context) ([]models.Subscription, error) {
	query := `
		SELECT name, amount, status FROM subscriptions
		WHERE profile_id = $1 ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query, s.profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Subscription{}
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.Name, &sub.Amount, &sub.Status); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SnapshotStore) payloads(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, query, s.profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decoding payload: %w", err)
		}
		out = append(out, payload)
	}
	return out, rows.Err()
}
