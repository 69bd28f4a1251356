package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// ConversationRepository handles database operations for the
// conversation index
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// ListByUser lists the conversations a user participates in, most
// recently active first
func (r *ConversationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	query := `
		SELECT id, user1_id, user2_id, last_message_at, created_at
		FROM conversations
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY last_message_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		c := &models.Conversation{}
		err := rows.Scan(&c.ID, &c.User1ID, &c.User2ID, &c.LastMessageAt, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning conversation row: %w", err)
		}
		conversations = append(conversations, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversation rows: %w", err)
	}

	return conversations, nil
}
