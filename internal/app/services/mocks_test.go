package services

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/repositories"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) CollegeEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserStore) UpdateProfilePicture(ctx context.Context, userID int64, path string) error {
	args := m.Called(ctx, userID, path)
	return args.Error(0)
}

func (m *MockUserStore) SetVerified(ctx context.Context, userID int64, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

func (m *MockUserStore) SetActive(ctx context.Context, userID int64, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserStore) ListAlumni(ctx context.Context, department, company, search string, passingYear *int) ([]*models.User, error) {
	args := m.Called(ctx, department, company, search, passingYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) ListStudents(ctx context.Context, department, search string, currentYear *int) ([]*models.User, error) {
	args := m.Called(ctx, department, search, currentYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) DistinctDepartments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserStore) CountDirectory(ctx context.Context, userType models.UserType) (int64, error) {
	args := m.Called(ctx, userType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) ListPending(ctx context.Context, userType string) ([]*models.User, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) ListAll(ctx context.Context, userType string, isVerified, isActive *bool, search string) ([]*models.User, error) {
	args := m.Called(ctx, userType, isVerified, isActive, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) CountAll(ctx context.Context) (*repositories.UserCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.UserCounts), args.Error(1)
}

// MockJobStore is a mock implementation of JobStore.
type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobStore) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobStore) List(ctx context.Context, jobType, company, location, search string) ([]*models.Job, error) {
	args := m.Called(ctx, jobType, company, location, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobStore) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Job, error) {
	args := m.Called(ctx, alumniID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobStore) Update(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobStore) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobStore) CountByAlumni(ctx context.Context, alumniID int64) (int64, error) {
	args := m.Called(ctx, alumniID)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationStore is a mock implementation of ApplicationStore.
type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Create(ctx context.Context, application *models.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationStore) Exists(ctx context.Context, jobID, studentID int64) (bool, error) {
	args := m.Called(ctx, jobID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationStore) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationStore) ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationStore) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationStore) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationStore) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageStore is a mock implementation of MessageStore.
type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Send(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageStore) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) ListBetween(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func (m *MockMessageStore) LastBetween(ctx context.Context, userA, userB int64) (*models.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageStore) MarkAllFromSenderRead(ctx context.Context, senderID, receiverID int64) error {
	args := m.Called(ctx, senderID, receiverID)
	return args.Error(0)
}

func (m *MockMessageStore) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) CountUnreadFrom(ctx context.Context, senderID, receiverID int64) (int64, error) {
	args := m.Called(ctx, senderID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) CountSent(ctx context.Context, senderID int64) (int64, error) {
	args := m.Called(ctx, senderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) CountReceived(ctx context.Context, receiverID int64) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

// MockConversationStore is a mock implementation of ConversationStore.
type MockConversationStore struct {
	mock.Mock
}

func (m *MockConversationStore) ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Conversation), args.Error(1)
}

// MockFileStorage is a mock implementation of filestorage.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	args := m.Called(fileHeader, subPath)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}
