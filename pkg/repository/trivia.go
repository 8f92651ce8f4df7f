package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/pucklab/puckdesk/pkg/domain"
)

// TriviaRepository handles trivia set database operations
type TriviaRepository struct {
	db *sqlx.DB
}

// triviaSetSQL represents a trivia set for SQL operations
type triviaSetSQL struct {
	ID            int64           `db:"id"`
	SetID         string          `db:"set_id"`
	Title         string          `db:"title"`
	Slug          string          `db:"slug"`
	Description   string          `db:"description"`
	SetType       string          `db:"set_type"`
	Theme         string          `db:"theme"`
	Category      string          `db:"category"`
	QuestionCount int             `db:"question_count"`
	QuestionData  setQuestionsSQL `db:"question_data"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// setQuestionsSQL is a JSON array of set questions for SQL operations
type setQuestionsSQL []domain.SetQuestion

// Value implements driver.Valuer for database storage
func (q setQuestionsSQL) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner for database retrieval
func (q *setQuestionsSQL) Scan(value interface{}) error {
	if value == nil {
		*q = setQuestionsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), q)
	}

	return json.Unmarshal(data, q)
}

// NewTriviaRepository creates a new trivia repository
func NewTriviaRepository(database *sqlx.DB) *TriviaRepository {
	return &TriviaRepository{db: database}
}

// InsertTriviaSet persists an assembled set; the uuid set_id is the
// conflict key so a re-run of the same build never duplicates a set
func (r *TriviaRepository) InsertTriviaSet(ctx context.Context, set *domain.TriviaSet) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO trivia_sets (
				set_id, title, slug, description, set_type, theme,
				category, question_count, question_data, status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(set_id) DO NOTHING
		`
		result, err := r.db.ExecContext(ctx, query,
			set.SetID, set.Title, set.Slug, set.Description, string(set.Type), set.Theme,
			set.Category, set.QuestionCount, setQuestionsSQL(set.Questions), string(set.Status))
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert trivia set: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		set.ID = id
		return nil
	})
}

// GetTriviaSet retrieves a set by its uuid; returns nil without error when
// no set matches
func (r *TriviaRepository) GetTriviaSet(ctx context.Context, setID string) (*domain.TriviaSet, error) {
	var sqlSet triviaSetSQL
	err := r.db.GetContext(ctx, &sqlSet, "SELECT * FROM trivia_sets WHERE set_id = ?", setID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trivia set: %w", err)
	}
	return r.toDomainSet(&sqlSet), nil
}

// ListTriviaSets retrieves sets with optional type/theme filters, newest
// first
func (r *TriviaRepository) ListTriviaSets(ctx context.Context, setType domain.TriviaType, theme string, limit int) ([]domain.TriviaSet, error) {
	query := "SELECT * FROM trivia_sets WHERE 1=1"
	var args []interface{}

	if setType != "" {
		query += " AND set_type = ?"
		args = append(args, string(setType))
	}
	if theme != "" {
		query += " AND theme = ?"
		args = append(args, theme)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	var sqlSets []triviaSetSQL
	if err := r.db.SelectContext(ctx, &sqlSets, query, args...); err != nil {
		return nil, fmt.Errorf("list trivia sets: %w", err)
	}

	sets := make([]domain.TriviaSet, len(sqlSets))
	for i := range sqlSets {
		sets[i] = *r.toDomainSet(&sqlSets[i])
	}
	return sets, nil
}

// ThemeUsage returns how many sets of a type exist per theme, feeding the
// orchestrator's least-used policy
func (r *TriviaRepository) ThemeUsage(ctx context.Context, setType domain.TriviaType) (map[string]int, error) {
	rows := []struct {
		Theme string `db:"theme"`
		Count int    `db:"count"`
	}{}

	query := `
		SELECT theme, COUNT(*) AS count FROM trivia_sets
		WHERE set_type = ?
		GROUP BY theme
	`
	if err := r.db.SelectContext(ctx, &rows, query, string(setType)); err != nil {
		return nil, fmt.Errorf("get theme usage: %w", err)
	}

	usage := make(map[string]int, len(rows))
	for _, row := range rows {
		usage[row.Theme] = row.Count
	}
	return usage, nil
}

// toDomainSet converts a SQL set to a domain set
func (r *TriviaRepository) toDomainSet(s *triviaSetSQL) *domain.TriviaSet {
	return &domain.TriviaSet{
		ID:            s.ID,
		SetID:         s.SetID,
		Title:         s.Title,
		Slug:          s.Slug,
		Description:   s.Description,
		Type:          domain.TriviaType(s.SetType),
		Theme:         s.Theme,
		Category:      s.Category,
		QuestionCount: s.QuestionCount,
		Questions:     s.QuestionData,
		Status:        domain.ItemStatus(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}
