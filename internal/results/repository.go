package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var ErrDuplicate = errors.New("game result already archived")

// Record is one finished game as archived in Postgres.
type Record struct {
	ID        int64
	GameID    string
	WhiteID   string
	BlackID   string
	Winner    string
	State     string
	Moves     []string
	StartedAt time.Time
	EndedAt   time.Time
}

// Repository archives finished games and serves player history.
type Repository interface {
	Insert(ctx context.Context, rec *Record) (int64, error)
	RecentByPlayer(ctx context.Context, playerID string, limit int) ([]*Record, error)
	Close() error
}

type repository struct {
	db *sql.DB
}

// Open connects to Postgres and returns the SQL-backed repository.
func Open(databaseURL string) (Repository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &repository{db: db}, nil
}

func (r *repository) Close() error { return r.db.Close() }

func (r *repository) Insert(ctx context.Context, rec *Record) (int64, error) {
	if rec == nil {
		return 0, fmt.Errorf("nil result record")
	}
	moves, err := json.Marshal(rec.Moves)
	if err != nil {
		return 0, fmt.Errorf("marshal moves: %w", err)
	}

	const query = `
		INSERT INTO atomic_games (
			game_id,
			white_id,
			black_id,
			winner,
			state,
			moves,
			started_at,
			ended_at
		)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)
		ON CONFLICT (game_id) DO NOTHING
		RETURNING id`

	var id sql.NullInt64
	err = r.db.QueryRowContext(
		ctx,
		query,
		rec.GameID,
		rec.WhiteID,
		rec.BlackID,
		rec.Winner,
		rec.State,
		moves,
		rec.StartedAt,
		rec.EndedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !id.Valid) {
		return 0, ErrDuplicate
	}
	if err != nil {
		return 0, fmt.Errorf("insert game result: %w", err)
	}
	return id.Int64, nil
}

func (r *repository) RecentByPlayer(ctx context.Context, playerID string, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT
			id,
			game_id,
			white_id,
			black_id,
			winner,
			state,
			moves,
			started_at,
			ended_at
		FROM atomic_games
		WHERE white_id = $1 OR black_id = $1
		ORDER BY ended_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("select game results: %w", err)
	}
	defer rows.Close()

	records := make([]*Record, 0, limit)
	for rows.Next() {
		var (
			rec       Record
			movesJSON []byte
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.GameID,
			&rec.WhiteID,
			&rec.BlackID,
			&rec.Winner,
			&rec.State,
			&movesJSON,
			&rec.StartedAt,
			&rec.EndedAt,
		); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		if err := json.Unmarshal(movesJSON, &rec.Moves); err != nil {
			return nil, fmt.Errorf("unmarshal moves: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
