package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLStore keeps sessions in the sessions table created by db.Migrate.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(id,user_id,expires_at) VALUES(?,?,?)
		ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, expires_at=excluded.expires_at`,
		sess.ID, sess.UserID, sess.ExpiresAt.Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Session, error) {
	var uid, exp int64
	err := s.db.QueryRowContext(ctx, `SELECT user_id, expires_at FROM sessions WHERE id = ?`, id).Scan(&uid, &exp)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	} else if err != nil {
		return Session{}, err
	}
	return Session{ID: id, UserID: uid, ExpiresAt: time.Unix(exp, 0)}, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// Purge removes sessions that expired before now and returns how many went.
func (s *SQLStore) Purge(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
