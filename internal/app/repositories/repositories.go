package repositories

import (
	"github.com/Anurg29/Aluminiconnect/internal/db"
)

// Repositories bundles all entity repositories for dependency wiring
type Repositories struct {
	UserRepository         *UserRepository
	JobRepository          *JobRepository
	ApplicationRepository  *ApplicationRepository
	MessageRepository      *MessageRepository
	ConversationRepository *ConversationRepository
}

// NewRepositories creates all repositories over one connection pool.
// The message repository additionally gets the transaction helper so
// a send and its conversation upsert commit together.
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		UserRepository:         NewUserRepository(pool),
		JobRepository:          NewJobRepository(pool),
		ApplicationRepository:  NewApplicationRepository(pool),
		MessageRepository:      NewMessageRepository(database),
		ConversationRepository: NewConversationRepository(pool),
	}
}
