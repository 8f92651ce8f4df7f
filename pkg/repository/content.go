package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pucklab/puckdesk/pkg/domain"
)

// ContentRepository handles content item database operations
type ContentRepository struct {
	db *sqlx.DB
}

// contentItemSQL represents a content item for SQL operations
type contentItemSQL struct {
	ID          int64      `db:"id"`
	Type        string     `db:"type"`
	Text        string     `db:"text"`
	Answer      string     `db:"answer"`
	Options     optionsSQL `db:"options"`
	Theme       string     `db:"theme"`
	Category    string     `db:"category"`
	Attribution string     `db:"attribution"`
	SourceGUID  string     `db:"source_guid"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// optionsSQL is a JSON array of option strings for SQL operations
type optionsSQL []string

// Value implements driver.Valuer for database storage
func (o optionsSQL) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner for database retrieval
func (o *optionsSQL) Scan(value interface{}) error {
	if value == nil {
		*o = optionsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), o)
	}

	return json.Unmarshal(data, o)
}

// NewContentRepository creates a new content repository
func NewContentRepository(database *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: database}
}

// CreateContentItem inserts a new content item
func (r *ContentRepository) CreateContentItem(ctx context.Context, item *domain.ContentItem) error {
	sqlItem := &contentItemSQL{
		Type:        string(item.Type),
		Text:        item.Text,
		Answer:      item.Answer,
		Options:     optionsSQL(item.Options),
		Theme:       item.Theme,
		Category:    item.Category,
		Attribution: item.Attribution,
		SourceGUID:  item.SourceGUID,
		Status:      string(item.Status),
	}

	query := `
		INSERT INTO content_items (
			type, text, answer, options, theme, category,
			attribution, source_guid, status
		) VALUES (
			:type, :text, :answer, :options, :theme, :category,
			:attribution, :source_guid, :status
		)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlItem)
	if err != nil {
		return fmt.Errorf("create content item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	item.ID = id
	return nil
}

// GetContentItem retrieves a content item by ID
func (r *ContentRepository) GetContentItem(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var sqlItem contentItemSQL
	err := r.db.GetContext(ctx, &sqlItem, "SELECT * FROM content_items WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return r.toDomainItem(&sqlItem), nil
}

// GetPool retrieves content items matching the filter, ordered by id for a
// stable pool indexing within one generation run
func (r *ContentRepository) GetPool(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
	query := "SELECT * FROM content_items WHERE type = ?"
	args := []interface{}{string(filter.Type)}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Theme != "" {
		query += " AND theme = ?"
		args = append(args, filter.Theme)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY id"

	var sqlItems []contentItemSQL
	if err := r.db.SelectContext(ctx, &sqlItems, query, args...); err != nil {
		return nil, fmt.Errorf("get content pool: %w", err)
	}

	items := make([]domain.ContentItem, len(sqlItems))
	for i := range sqlItems {
		items[i] = *r.toDomainItem(&sqlItems[i])
	}
	return items, nil
}

// ContentItemExists checks if an item with the source GUID already exists
func (r *ContentRepository) ContentItemExists(ctx context.Context, sourceGUID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM content_items WHERE source_guid = ?)", sourceGUID)
	if err != nil {
		return false, fmt.Errorf("check content item exists: %w", err)
	}
	return exists, nil
}

// UpdateContentItemStatus moves an item through its editorial lifecycle
func (r *ContentRepository) UpdateContentItemStatus(ctx context.Context, id int64, status domain.ItemStatus) error {
	query := `
		UPDATE content_items
		SET status = ?, updated_at = datetime('now')
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update content item status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("content item %d not found", id)
	}
	return nil
}

// toDomainItem converts a SQL item to a domain item
func (r *ContentRepository) toDomainItem(s *contentItemSQL) *domain.ContentItem {
	return &domain.ContentItem{
		ID:          s.ID,
		Type:        domain.ContentType(s.Type),
		Text:        s.Text,
		Answer:      s.Answer,
		Options:     s.Options,
		Theme:       s.Theme,
		Category:    s.Category,
		Attribution: s.Attribution,
		SourceGUID:  s.SourceGUID,
		Status:      domain.ItemStatus(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
