package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/db"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

const messageColumns = `m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
	s.full_name, r.full_name`

// MessageRepository handles database operations for direct messages
// and keeps the conversation index in sync with them
type MessageRepository struct {
	database *db.PostgresDB
	db       *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(database *db.PostgresDB) *MessageRepository {
	return &MessageRepository{database: database, db: database.Pool}
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	m := &models.Message{}
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
		&m.SenderName, &m.ReceiverName,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Send inserts a message and upserts its conversation row in a single
// transaction. Two first messages racing on the same pair both land on
// the one conversation row because the insert targets the canonical
// ordered pair and resolves the unique conflict in place.
func (r *MessageRepository) Send(ctx context.Context, message *models.Message) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO messages (sender_id, receiver_id, content, is_read)
			 VALUES ($1, $2, $3, false)
			 RETURNING id, is_read, created_at`,
			message.SenderID, message.ReceiverID, message.Content,
		).Scan(&message.ID, &message.IsRead, &message.CreatedAt)
		if err != nil {
			return fmt.Errorf("error inserting message: %w", err)
		}

		user1, user2 := models.CanonicalPair(message.SenderID, message.ReceiverID)
		_, err = tx.Exec(ctx,
			`INSERT INTO conversations (user1_id, user2_id, last_message_at)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user1_id, user2_id)
			 DO UPDATE SET last_message_at = EXCLUDED.last_message_at`,
			user1, user2, message.CreatedAt)
		if err != nil {
			return fmt.Errorf("error upserting conversation: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE m.id = $1`, messageColumns)

	message, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return message, nil
}

// ListBetween lists the full thread between two users in
// chronological order
func (r *MessageRepository) ListBetween(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC`, messageColumns)

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// LastBetween retrieves the most recent message between two users, or
// nil when the pair has never exchanged one
func (r *MessageRepository) LastBetween(ctx context.Context, userA, userB int64) (*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at DESC
		LIMIT 1`, messageColumns)

	message, err := scanMessage(r.db.QueryRow(ctx, query, userA, userB))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving last message: %w", err)
	}

	return message, nil
}

// MarkRead marks a single message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// MarkAllFromSenderRead marks every unread message from one sender to
// one receiver as read
func (r *MessageRepository) MarkAllFromSenderRead(ctx context.Context, senderID, receiverID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = true
		 WHERE sender_id = $1 AND receiver_id = $2 AND is_read = false`,
		senderID, receiverID)
	if err != nil {
		return fmt.Errorf("error marking thread read: %w", err)
	}
	return nil
}

// CountUnread counts every unread message addressed to a user
func (r *MessageRepository) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = false`,
		receiverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}

// CountUnreadFrom counts the unread messages one sender has pending
// with a receiver
func (r *MessageRepository) CountUnreadFrom(ctx context.Context, senderID, receiverID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE sender_id = $1 AND receiver_id = $2 AND is_read = false`,
		senderID, receiverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}

// Delete removes a message
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// CountSent counts the messages one user has sent
func (r *MessageRepository) CountSent(ctx context.Context, senderID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE sender_id = $1`, senderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting sent messages: %w", err)
	}
	return count, nil
}

// CountReceived counts the messages one user has received
func (r *MessageRepository) CountReceived(ctx context.Context, receiverID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE receiver_id = $1`, receiverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting received messages: %w", err)
	}
	return count, nil
}

// Count counts all messages on the platform
func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting messages: %w", err)
	}
	return count, nil
}
