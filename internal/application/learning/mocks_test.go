package learning

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/learning"
)

// MockCategoryRepository is a mock implementation of learning.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*learning.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*learning.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDWithItems(ctx context.Context, id uint) (*learning.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*learning.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*learning.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*learning.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]learning.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]learning.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *learning.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *learning.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository is a mock implementation of learning.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uint) (*learning.LearningItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*learning.LearningItem), args.Error(1)
}

func (m *MockItemRepository) FindByCategory(ctx context.Context, categoryID uint, vis learning.Visibility) ([]learning.LearningItem, error) {
	args := m.Called(ctx, categoryID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]learning.LearningItem), args.Error(1)
}

func (m *MockItemRepository) FindOwnedBy(ctx context.Context, userID uint) ([]learning.LearningItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]learning.LearningItem), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *learning.LearningItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Save(ctx context.Context, item *learning.LearningItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByMobileNumber(ctx context.Context, mobile string) (*identity.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPronunciationRepository is a mock implementation of learning.PronunciationRepository
type MockPronunciationRepository struct {
	mock.Mock
}

func (m *MockPronunciationRepository) FindByID(ctx context.Context, id uint) (*learning.Pronunciation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*learning.Pronunciation), args.Error(1)
}

func (m *MockPronunciationRepository) FindByItem(ctx context.Context, itemID uint) ([]learning.Pronunciation, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]learning.Pronunciation), args.Error(1)
}

func (m *MockPronunciationRepository) Create(ctx context.Context, pronunciation *learning.Pronunciation) error {
	args := m.Called(ctx, pronunciation)
	return args.Error(0)
}

func (m *MockPronunciationRepository) Save(ctx context.Context, pronunciation *learning.Pronunciation) error {
	args := m.Called(ctx, pronunciation)
	return args.Error(0)
}

func (m *MockPronunciationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFileStore is a mock implementation of FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, folder, file)
	return args.String(0), args.Error(1)
}
