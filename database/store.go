package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/mbolis/speech-survey/model"
)

var ErrNotFound = errors.New("not found")

// Store runs each operation as its own statement; nothing is shared across calls.
type Store struct {
	db     *sql.DB
	newUID func() (string, error)
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, newUID: randomUID}
}

func randomUID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// InsertSurvey stores a new survey response under a freshly generated uid
// and returns that uid.
func (s *Store) InsertSurvey(ctx context.Context, age int, gender, region string) (string, error) {
	uid, err := s.newUID()
	if err != nil {
		return "", fmt.Errorf("generate uid: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO survey (uid, age, gender, region)
		VALUES (?, ?, ?, ?)`,
		uid, age, gender, region,
	)
	if err != nil {
		return "", fmt.Errorf("insert survey: %w", err)
	}
	return uid, nil
}

func (s *Store) GetSurvey(ctx context.Context, uid string) (resp model.SurveyResponse, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT uid, age, gender, region
		FROM survey
		WHERE uid = ?`,
		uid,
	).Scan(&resp.UID, &resp.Age, &resp.Gender, &resp.Region)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	} else if err != nil {
		err = fmt.Errorf("get survey: %w", err)
	}
	return
}

// InsertUpload records one accepted upload. A nil sentence is stored as NULL.
func (s *Store) InsertUpload(ctx context.Context, sentence *string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uploads (sentence)
		VALUES (?)`,
		sentence,
	)
	if err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

// ListDistinctSentences returns every non-null sentence once, sorted.
// Distinctness is exact: case and whitespace variants are kept apart.
func (s *Store) ListDistinctSentences(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT sentence
		FROM uploads
		WHERE sentence IS NOT NULL
		ORDER BY sentence`)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	defer rows.Close()

	sentences := []string{}
	for rows.Next() {
		var sentence string
		err = rows.Scan(&sentence)
		if err != nil {
			return nil, fmt.Errorf("list sentences.scan: %w", err)
		}
		sentences = append(sentences, sentence)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	return sentences, nil
}
