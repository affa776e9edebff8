package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/shenikar/community_map_system/internal/service"
)

// CommunityRepository - хранилище сквозных данных сообщества (чат, подсветки улиц,
// заметки, приветственное уведомление). В отличие от ядра инцидентов эти данные
// переживают рестарт и лежат в PostgreSQL.
type CommunityRepository struct {
	db *pgxpool.Pool
}

func NewCommunityRepository(db *pgxpool.Pool) service.CommunityRepository {
	return &CommunityRepository{db: db}
}

// SaveChatMessage сохраняет сообщение чата
func (r *CommunityRepository) SaveChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (author, message)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, msg.Author, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListChatMessages возвращает последние limit сообщений чата, новые первыми
func (r *CommunityRepository) ListChatMessages(ctx context.Context, limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, author, message, created_at
		FROM chat_messages
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(&msg.ID, &msg.Author, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error chat messages iteration: %w", err)
	}
	return messages, nil
}

// CreateStreetHighlight сохраняет подсветку участка улицы
func (r *CommunityRepository) CreateStreetHighlight(ctx context.Context, h *models.StreetHighlight) error {
	query := `
		INSERT INTO street_highlights (street_key, color)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, h.StreetKey, h.Color).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create street highlight: %w", err)
	}
	return nil
}

// ListStreetHighlights возвращает все подсветки улиц
func (r *CommunityRepository) ListStreetHighlights(ctx context.Context) ([]*models.StreetHighlight, error) {
	query := `
		SELECT id, street_key, color, created_at
		FROM street_highlights
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list street highlights: %w", err)
	}
	defer rows.Close()

	highlights := make([]*models.StreetHighlight, 0)
	for rows.Next() {
		h := &models.StreetHighlight{}
		if err := rows.Scan(&h.ID, &h.StreetKey, &h.Color, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan street highlight row: %w", err)
		}
		highlights = append(highlights, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error street highlights iteration: %w", err)
	}
	return highlights, nil
}

// DeleteStreetHighlight удаляет подсветку. Возвращает false, если записи нет.
func (r *CommunityRepository) DeleteStreetHighlight(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM street_highlights WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete street highlight: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// CreateStreetNote сохраняет заметку об участке улицы
func (r *CommunityRepository) CreateStreetNote(ctx context.Context, n *models.StreetNote) error {
	query := `
		INSERT INTO street_notes (street_key, note)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, n.StreetKey, n.Note).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create street note: %w", err)
	}
	return nil
}

// ListStreetNotes возвращает все заметки об улицах
func (r *CommunityRepository) ListStreetNotes(ctx context.Context) ([]*models.StreetNote, error) {
	query := `
		SELECT id, street_key, note, created_at
		FROM street_notes
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list street notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.StreetNote, 0)
	for rows.Next() {
		n := &models.StreetNote{}
		if err := rows.Scan(&n.ID, &n.StreetKey, &n.Note, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan street note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error street notes iteration: %w", err)
	}
	return notes, nil
}

// DeleteStreetNote удаляет заметку. Возвращает false, если записи нет.
func (r *CommunityRepository) DeleteStreetNote(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM street_notes WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete street note: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// GetWelcomeNotice возвращает текущее приветственное уведомление.
// Если запись еще не создавалась, возвращается пустое содержимое.
func (r *CommunityRepository) GetWelcomeNotice(ctx context.Context) (*models.WelcomeNotice, error) {
	notice := &models.WelcomeNotice{}
	query := `SELECT content, updated_at FROM welcome_notice WHERE id = 1;`
	err := r.db.QueryRow(ctx, query).Scan(&notice.Content, &notice.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.WelcomeNotice{}, nil
		}
		return nil, fmt.Errorf("failed to get welcome notice: %w", err)
	}
	return notice, nil
}

// UpsertWelcomeNotice заменяет содержимое приветственного уведомления
func (r *CommunityRepository) UpsertWelcomeNotice(ctx context.Context, content string) (*models.WelcomeNotice, error) {
	notice := &models.WelcomeNotice{Content: content}
	query := `
		INSERT INTO welcome_notice (id, content, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING updated_at;
	`
	if err := r.db.QueryRow(ctx, query, content).Scan(&notice.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to upsert welcome notice: %w", err)
	}
	return notice, nil
}
