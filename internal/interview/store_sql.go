package interview

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// SQLStore persists candidates and the session through database/sql; both
// the sqlite and pgx drivers work against the same statements.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) SaveCandidate(ctx context.Context, c Candidate) error {
	qj, err := json.Marshal(c.Questions)
	if err != nil {
		return err
	}
	aj, err := json.Marshal(c.Answers)
	if err != nil {
		return err
	}
	var score sql.NullInt64
	if c.FinalScore != nil {
		score = sql.NullInt64{Int64: int64(*c.FinalScore), Valid: true}
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO candidates (id,name,email,phone,questions_json,answers_json,final_score,summary,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
			questions_json=EXCLUDED.questions_json, answers_json=EXCLUDED.answers_json,
			final_score=EXCLUDED.final_score, summary=EXCLUDED.summary`,
		c.ID, c.Profile.Name, c.Profile.Email, c.Profile.Phone, string(qj), string(aj), score, c.Summary, c.CreatedAt)
	return err
}

func (s *SQLStore) SaveSession(ctx context.Context, sess Session) error {
	// WelcomeBack is transient and deliberately not stored.
	_, err := s.db.ExecContext(ctx, `INSERT INTO session (id,candidate_id,status,current_index,draft)
		VALUES (1,$1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET candidate_id=EXCLUDED.candidate_id, status=EXCLUDED.status,
			current_index=EXCLUDED.current_index, draft=EXCLUDED.draft`,
		sess.CurrentCandidateID, string(sess.Status), sess.CurrentIndex, sess.Draft)
	return err
}

func (s *SQLStore) Load(ctx context.Context) (State, error) {
	st := NewState()

	row := s.db.QueryRowContext(ctx, `SELECT candidate_id,status,current_index,draft FROM session WHERE id=1`)
	var status string
	err := row.Scan(&st.Session.CurrentCandidateID, &status, &st.Session.CurrentIndex, &st.Session.Draft)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// fresh database, idle session
	case err != nil:
		return State{}, err
	default:
		st.Session.Status = Status(status)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id,name,email,phone,questions_json,answers_json,final_score,summary,created_at
		FROM candidates ORDER BY created_at, id`)
	if err != nil {
		return State{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var c Candidate
		var qj, aj string
		var score sql.NullInt64
		var summary sql.NullString
		if err := rows.Scan(&c.ID, &c.Profile.Name, &c.Profile.Email, &c.Profile.Phone, &qj, &aj, &score, &summary, &c.CreatedAt); err != nil {
			return State{}, err
		}
		if err := json.Unmarshal([]byte(qj), &c.Questions); err != nil {
			return State{}, err
		}
		if err := json.Unmarshal([]byte(aj), &c.Answers); err != nil {
			return State{}, err
		}
		if score.Valid {
			v := int(score.Int64)
			c.FinalScore = &v
		}
		c.Summary = summary.String
		st.Candidates = append(st.Candidates, &c)
	}
	return st, rows.Err()
}
