package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/repositories"
	jwtauth "github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/filestorage"
)

// The store interfaces below are the slices of the repository layer
// each service consumes. Tests substitute mocks for them.

// UserStore is the user persistence surface consumed by services
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CollegeEmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateProfilePicture(ctx context.Context, userID int64, path string) error
	SetVerified(ctx context.Context, userID int64, verified bool) error
	SetActive(ctx context.Context, userID int64, active bool) error
	Delete(ctx context.Context, userID int64) error
	ListAlumni(ctx context.Context, department, company, search string, passingYear *int) ([]*models.User, error)
	ListStudents(ctx context.Context, department, search string, currentYear *int) ([]*models.User, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
	CountDirectory(ctx context.Context, userType models.UserType) (int64, error)
	ListPending(ctx context.Context, userType string) ([]*models.User, error)
	ListAll(ctx context.Context, userType string, isVerified, isActive *bool, search string) ([]*models.User, error)
	CountAll(ctx context.Context) (*repositories.UserCounts, error)
}

// JobStore is the job persistence surface consumed by services
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context, jobType, company, location, search string) ([]*models.Job, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
	CountByAlumni(ctx context.Context, alumniID int64) (int64, error)
}

// ApplicationStore is the application persistence surface consumed by
// services
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	Exists(ctx context.Context, jobID, studentID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStudent(ctx context.Context, studentID int64) (int64, error)
}

// MessageStore is the message persistence surface consumed by services
type MessageStore interface {
	Send(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	ListBetween(ctx context.Context, userA, userB int64) ([]*models.Message, error)
	LastBetween(ctx context.Context, userA, userB int64) (*models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllFromSenderRead(ctx context.Context, senderID, receiverID int64) error
	CountUnread(ctx context.Context, receiverID int64) (int64, error)
	CountUnreadFrom(ctx context.Context, senderID, receiverID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountSent(ctx context.Context, senderID int64) (int64, error)
	CountReceived(ctx context.Context, receiverID int64) (int64, error)
}

// ConversationStore is the conversation persistence surface consumed
// by services
type ConversationStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error)
}

// Services bundles every application service
type Services struct {
	AuthService  AuthService
	UserService  UserService
	JobService   JobService
	ChatService  ChatService
	AdminService AdminService
}

// NewServices wires the services onto the repository layer
func NewServices(
	repos *repositories.Repositories,
	jwtService *jwtauth.JWTService,
	authzService *auth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	uploads UploadLimits,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:  NewAuthService(repos.UserRepository, jwtService, fileStorage, uploads, logger),
		UserService:  NewUserService(repos.UserRepository, logger),
		JobService:   NewJobService(repos.JobRepository, repos.ApplicationRepository, repos.UserRepository, authzService, logger),
		ChatService:  NewChatService(repos.MessageRepository, repos.ConversationRepository, repos.UserRepository, authzService, logger),
		AdminService: NewAdminService(repos.UserRepository, repos.JobRepository, repos.ApplicationRepository, repos.MessageRepository, authzService, logger),
	}
}
