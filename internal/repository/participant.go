package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const participantColumns = `id, event_id, name, email, phone, custom_fields, token,
		invited, invited_at, checked_in, checked_in_at, shortlisted, shortlisted_at,
		confirmation_sent, confirmation_sent_at, attended, attended_at,
		email_status, email_error, source, created_at, updated_at`

func scanParticipant(row interface{ Scan(...any) error }) (*domain.Participant, error) {
	var (
		p      domain.Participant
		fields []byte
	)
	err := row.Scan(
		&p.ID, &p.EventID, &p.Name, &p.Email, &p.Phone, &fields, &p.Token,
		&p.Invited, &p.InvitedAt, &p.CheckedIn, &p.CheckedInAt,
		&p.Shortlisted, &p.ShortlistedAt,
		&p.ConfirmationSent, &p.ConfirmationSentAt, &p.Attended, &p.AttendedAt,
		&p.EmailStatus, &p.EmailError, &p.Source, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &p.CustomFields); err != nil {
			return nil, fmt.Errorf("decode custom fields: %w", err)
		}
	}
	return &p, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	fields, err := json.Marshal(p.CustomFields)
	if err != nil {
		return fmt.Errorf("encode custom fields: %w", err)
	}
	if p.CustomFields == nil {
		fields = []byte(`{}`)
	}

	query := `INSERT INTO participants (id, event_id, name, email, phone, custom_fields, token,
				checked_in, checked_in_at, email_status, source, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.Name, p.Email, p.Phone, fields, p.Token,
		p.CheckedIn, p.CheckedInAt, p.EmailStatus, p.Source, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrParticipantExists
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return r.getBy(ctx, "id", id)
}

// GetByToken is the lookup behind every unauthenticated check-in and scan
// request; the token column carries a unique index so this stays O(1).
func (r *ParticipantRepository) GetByToken(ctx context.Context, token string) (*domain.Participant, error) {
	return r.getBy(ctx, "token", token)
}

func (r *ParticipantRepository) getBy(ctx context.Context, column, value string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + `
			  FROM participants
			  WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return p, nil
}

func (r *ParticipantRepository) GetByEmailAndEvent(ctx context.Context, email, eventID string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + `
			  FROM participants
			  WHERE email = $1 AND event_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email, eventID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return p, nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string, f domain.ParticipantFilter) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + `
			  FROM participants
			  WHERE event_id = $1`
	args := []any{eventID}

	for _, cond := range []struct {
		column string
		value  *bool
	}{
		{"invited", f.Invited},
		{"checked_in", f.CheckedIn},
		{"shortlisted", f.Shortlisted},
		{"attended", f.Attended},
	} {
		if cond.value != nil {
			args = append(args, *cond.value)
			query += fmt.Sprintf(" AND %s = $%d", cond.column, len(args))
		}
	}
	query += " ORDER BY created_at DESC"

	return r.list(ctx, query, args...)
}

func (r *ParticipantRepository) ListUninvited(ctx context.Context, eventID string, ids []string) ([]*domain.Participant, error) {
	if len(ids) > 0 {
		query := `SELECT ` + participantColumns + `
				  FROM participants
				  WHERE event_id = $1 AND id = ANY($2)`
		return r.list(ctx, query, eventID, pq.Array(ids))
	}

	query := `SELECT ` + participantColumns + `
			  FROM participants
			  WHERE event_id = $1 AND invited = FALSE`
	return r.list(ctx, query, eventID)
}

func (r *ParticipantRepository) ListShortlisted(ctx context.Context, eventID string, ids []string) ([]*domain.Participant, error) {
	if len(ids) > 0 {
		query := `SELECT ` + participantColumns + `
				  FROM participants
				  WHERE event_id = $1 AND shortlisted = TRUE AND id = ANY($2)`
		return r.list(ctx, query, eventID, pq.Array(ids))
	}

	query := `SELECT ` + participantColumns + `
			  FROM participants
			  WHERE event_id = $1 AND shortlisted = TRUE`
	return r.list(ctx, query, eventID)
}

func (r *ParticipantRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Participant, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

// SetCheckedIn flips checked_in in a single conditional UPDATE keyed on the
// current flag value, so the already-done check and the flip are serialized
// by the database: two near-simultaneous confirmations cannot both observe
// checked_in = FALSE. No retry wrapper here — a retried flip that raced its
// own first attempt would misreport "already checked in".
func (r *ParticipantRepository) SetCheckedIn(ctx context.Context, token string) (*domain.Participant, bool, error) {
	query := `UPDATE participants
			  SET checked_in = TRUE, checked_in_at = now(), updated_at = now()
			  WHERE token = $1 AND checked_in = FALSE
			  RETURNING ` + participantColumns

	return r.flip(ctx, query, token)
}

// SetAttended is the QR-scan twin of SetCheckedIn; attended is a separate
// flag on purpose, the two touchpoints are distinct product events.
func (r *ParticipantRepository) SetAttended(ctx context.Context, token string) (*domain.Participant, bool, error) {
	query := `UPDATE participants
			  SET attended = TRUE, attended_at = now(), updated_at = now()
			  WHERE token = $1 AND attended = FALSE
			  RETURNING ` + participantColumns

	return r.flip(ctx, query, token)
}

func (r *ParticipantRepository) flip(ctx context.Context, query, token string) (*domain.Participant, bool, error) {
	p, err := scanParticipant(r.db.Master.QueryRowContext(ctx, query, token))
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("flip flag: %w", err)
	}

	// Zero rows: unknown token, or the flag was already set. Distinguish.
	existing, err := r.GetByToken(ctx, token)
	if err != nil {
		return nil, false, err
	}
	return existing, true, nil
}

func (r *ParticipantRepository) MarkInvited(ctx context.Context, ids []string) error {
	query := `UPDATE participants
			  SET invited = TRUE, invited_at = now(), email_status = $2, email_error = '', updated_at = now()
			  WHERE id = ANY($1)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids), domain.EmailStatusSent)
	if err != nil {
		return fmt.Errorf("mark invited: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) MarkConfirmationSent(ctx context.Context, ids []string) error {
	query := `UPDATE participants
			  SET confirmation_sent = TRUE, confirmation_sent_at = now(), updated_at = now()
			  WHERE id = ANY($1)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("mark confirmation sent: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) MarkEmailFailed(ctx context.Context, id string, sendErr string) error {
	query := `UPDATE participants
			  SET email_status = $2, email_error = $3, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EmailStatusFailed, sendErr)
	if err != nil {
		return fmt.Errorf("mark email failed: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) SetShortlisted(ctx context.Context, ids []string, shortlisted bool) (int64, error) {
	var query string
	if shortlisted {
		query = `UPDATE participants
				 SET shortlisted = TRUE, shortlisted_at = now(), updated_at = now()
				 WHERE id = ANY($1) AND shortlisted = FALSE`
	} else {
		query = `UPDATE participants
				 SET shortlisted = FALSE, updated_at = now()
				 WHERE id = ANY($1) AND shortlisted = TRUE`
	}

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("set shortlisted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("shortlist rows affected: %w", err)
	}

	return rows, nil
}
