package learning

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type itemServiceMocks struct {
	items      *MockItemRepository
	categories *MockCategoryRepository
	users      *MockUserRepository
	prons      *MockPronunciationRepository
	files      *MockFileStore
}

func newItemService() (*ItemService, itemServiceMocks) {
	m := itemServiceMocks{
		items:      new(MockItemRepository),
		categories: new(MockCategoryRepository),
		users:      new(MockUserRepository),
		prons:      new(MockPronunciationRepository),
		files:      new(MockFileStore),
	}
	logger := zap.NewNop()
	svc := NewItemService(m.items, NewCategoryService(m.categories, logger), m.users, m.prons, m.files, logger)
	return svc, m
}

func filesWith(fields ...string) map[string][]*multipart.FileHeader {
	files := make(map[string][]*multipart.FileHeader)
	for _, field := range fields {
		files[field] = []*multipart.FileHeader{{Filename: field + ".bin"}}
	}
	return files
}

func uintPtr(v uint) *uint { return &v }

func expectJoinedView(m itemServiceMocks, item *learning.LearningItem) {
	m.items.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	m.prons.On("FindByItem", mock.Anything, item.ID).Return([]learning.Pronunciation{}, nil)
}

func TestItemService_Create_RegisteredChildOwnsPrivateItem(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByName", mock.Anything, "Shapes").Return(category, nil)
	m.users.On("Exists", mock.Anything, uint(7)).Return(true, nil)
	m.files.On("Save", mock.Anything, "images", mock.Anything).Return("/uploads/images/1-ab.jpg", nil)
	m.items.On("Create", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.UserID != nil && *i.UserID == 7 && !i.IsPublic && i.CategoryID == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*learning.LearningItem).ID = 11
	}).Return(nil)
	expectJoinedView(m, &learning.LearningItem{ID: 11, UserID: uintPtr(7), CategoryID: 2, ItemName: "Circle"})

	resp, err := svc.Create(context.Background(), identity.ForUser(7), CreateItemInput{
		CategoryName: "Shapes",
		ItemName:     "Circle",
		Files:        filesWith("photo"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), resp.ID)
	assert.False(t, resp.IsPublic)
	m.items.AssertExpectations(t)
}

func TestItemService_Create_AdminItemIsPublicAndOwnerless(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByName", mock.Anything, "Shapes").Return(category, nil)
	m.files.On("Save", mock.Anything, "images", mock.Anything).Return("/uploads/images/1-ab.jpg", nil)
	m.items.On("Create", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.UserID == nil && i.IsPublic
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*learning.LearningItem).ID = 12
	}).Return(nil)
	expectJoinedView(m, &learning.LearningItem{ID: 12, CategoryID: 2, ItemName: "Square", IsPublic: true})

	resp, err := svc.Create(context.Background(), identity.ForAdmin(), CreateItemInput{
		CategoryName: "Shapes",
		ItemName:     "Square",
		Files:        filesWith("photo"),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsPublic)
	assert.Nil(t, resp.UserID)
	m.users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestItemService_Create_MissingOwnerDegradesToOwnerless(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByName", mock.Anything, "Shapes").Return(category, nil)
	m.users.On("Exists", mock.Anything, uint(42)).Return(false, nil)
	m.files.On("Save", mock.Anything, "images", mock.Anything).Return("/uploads/images/1-ab.jpg", nil)
	m.items.On("Create", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.UserID == nil && !i.IsPublic
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*learning.LearningItem).ID = 13
	}).Return(nil)
	expectJoinedView(m, &learning.LearningItem{ID: 13, CategoryID: 2, ItemName: "Circle"})

	resp, err := svc.Create(context.Background(), identity.ForUser(42), CreateItemInput{
		CategoryName: "Shapes",
		ItemName:     "Circle",
		Files:        filesWith("photo"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.UserID)
	assert.False(t, resp.IsPublic)
}

func TestItemService_Create_AcceptsImageAliasAndVoice(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByName", mock.Anything, "Shapes").Return(category, nil)
	m.files.On("Save", mock.Anything, "images", mock.MatchedBy(func(f *multipart.FileHeader) bool {
		return f.Filename == "image.bin"
	})).Return("/uploads/images/1-ab.jpg", nil)
	m.files.On("Save", mock.Anything, "voice", mock.MatchedBy(func(f *multipart.FileHeader) bool {
		return f.Filename == "record.bin"
	})).Return("/uploads/voice/1-cd.mp3", nil)
	m.items.On("Create", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.ImageURL == "/uploads/images/1-ab.jpg" &&
			i.VoiceURL != nil && *i.VoiceURL == "/uploads/voice/1-cd.mp3"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*learning.LearningItem).ID = 14
	}).Return(nil)
	expectJoinedView(m, &learning.LearningItem{ID: 14, CategoryID: 2})

	_, err := svc.Create(context.Background(), identity.ForAdmin(), CreateItemInput{
		CategoryName: "Shapes",
		ItemName:     "Circle",
		Files:        filesWith("image", "record"),
	})
	require.NoError(t, err)
	m.files.AssertExpectations(t)
}

func TestItemService_Create_MissingPhoto(t *testing.T) {
	svc, m := newItemService()

	_, err := svc.Create(context.Background(), identity.ForUser(7), CreateItemInput{
		CategoryName: "Shapes",
		ItemName:     "Circle",
		Files:        filesWith("voice"),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	m.categories.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestItemService_Create_MissingFields(t *testing.T) {
	svc, _ := newItemService()

	_, err := svc.Create(context.Background(), identity.ForUser(7), CreateItemInput{
		ItemName: "Circle",
		Files:    filesWith("photo"),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestItemService_Update_OwnerUpdatesOwnItem(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 20, UserID: uintPtr(7), CategoryID: 2, ItemName: "Circle"}
	m.items.On("FindByID", mock.Anything, uint(20)).Return(item, nil)
	m.items.On("Save", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.ItemName == "Round circle"
	})).Return(nil)
	m.prons.On("FindByItem", mock.Anything, uint(20)).Return([]learning.Pronunciation{}, nil)

	resp, err := svc.Update(context.Background(), identity.ForUser(7), 20, UpdateItemInput{
		ItemName: "Round circle",
	})
	require.NoError(t, err)
	assert.Equal(t, "Round circle", resp.ItemName)
}

func TestItemService_Update_OtherUserForbidden(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 20, UserID: uintPtr(7)}
	m.items.On("FindByID", mock.Anything, uint(20)).Return(item, nil)

	_, err := svc.Update(context.Background(), identity.ForUser(8), 20, UpdateItemInput{ItemName: "Hijack"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	m.items.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestItemService_Update_OrphanedItemImmutableToUsers(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 21, UserID: nil, IsPublic: false}
	m.items.On("FindByID", mock.Anything, uint(21)).Return(item, nil)

	_, err := svc.Update(context.Background(), identity.ForUser(7), 21, UpdateItemInput{ItemName: "Mine now"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestItemService_Update_AdminUpdatesAnyItem(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 21, UserID: uintPtr(7), CategoryID: 2}
	m.items.On("FindByID", mock.Anything, uint(21)).Return(item, nil)
	m.items.On("Save", mock.Anything, item).Return(nil)
	m.prons.On("FindByItem", mock.Anything, uint(21)).Return([]learning.Pronunciation{}, nil)

	_, err := svc.Update(context.Background(), identity.ForAdmin(), 21, UpdateItemInput{ItemName: "Renamed"})
	require.NoError(t, err)
}

func TestItemService_Update_UnknownCategoryIDRejected(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 22, UserID: uintPtr(7)}
	m.items.On("FindByID", mock.Anything, uint(22)).Return(item, nil)
	m.categories.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), identity.ForUser(7), 22, UpdateItemInput{CategoryID: uintPtr(99)})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	assert.Equal(t, "Provided categoryId does not exist", domainErr.Message)
}

func TestItemService_Update_CategoryNameReconciles(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 23, UserID: uintPtr(7), CategoryID: 2}
	m.items.On("FindByID", mock.Anything, uint(23)).Return(item, nil)
	m.categories.On("FindByName", mock.Anything, "Vehicles").Return(nil, shared.ErrNotFound)
	m.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *learning.Category) bool {
		return c.Name == "Vehicles" && !c.IsDefault
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*learning.Category).ID = 5
	}).Return(nil)
	m.items.On("Save", mock.Anything, mock.MatchedBy(func(i *learning.LearningItem) bool {
		return i.CategoryID == 5
	})).Return(nil)
	m.prons.On("FindByItem", mock.Anything, uint(23)).Return([]learning.Pronunciation{}, nil)

	_, err := svc.Update(context.Background(), identity.ForUser(7), 23, UpdateItemInput{CategoryName: "Vehicles"})
	require.NoError(t, err)
	m.categories.AssertExpectations(t)
}

func TestItemService_Update_MissingItem(t *testing.T) {
	svc, m := newItemService()

	m.items.On("FindByID", mock.Anything, uint(404)).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), identity.ForAdmin(), 404, UpdateItemInput{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestItemService_ListByCategory_VisibilityByCaller(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByID", mock.Anything, uint(2)).Return(category, nil)
	m.items.On("FindByCategory", mock.Anything, uint(2), learning.Visibility{OwnerID: uintPtr(7)}).
		Return([]learning.LearningItem{{ID: 1, IsPublic: true}, {ID: 2, UserID: uintPtr(7)}}, nil)

	responses, err := svc.ListByCategory(context.Background(), identity.ForUser(7), 2)
	require.NoError(t, err)
	assert.Len(t, responses, 2)
}

func TestItemService_ListByCategory_AnonymousSeesPublicOnly(t *testing.T) {
	svc, m := newItemService()

	category := &learning.Category{ID: 2, Name: "Shapes"}
	m.categories.On("FindByID", mock.Anything, uint(2)).Return(category, nil)
	m.items.On("FindByCategory", mock.Anything, uint(2), learning.Visibility{}).
		Return([]learning.LearningItem{{ID: 1, IsPublic: true}}, nil)

	responses, err := svc.ListByCategory(context.Background(), identity.Anonymous(), 2)
	require.NoError(t, err)
	assert.Len(t, responses, 1)
	m.items.AssertExpectations(t)
}

func TestItemService_ListByCategory_MissingCategory(t *testing.T) {
	svc, m := newItemService()

	m.categories.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	_, err := svc.ListByCategory(context.Background(), identity.Anonymous(), 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	m.items.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestItemService_GetByID_IncludesPronunciations(t *testing.T) {
	svc, m := newItemService()

	item := &learning.LearningItem{ID: 30, CategoryID: 2, ItemName: "Apple"}
	m.items.On("FindByID", mock.Anything, uint(30)).Return(item, nil)
	m.prons.On("FindByItem", mock.Anything, uint(30)).
		Return([]learning.Pronunciation{{ID: 1, ItemID: 30, Text: "Apple", Language: "en"}}, nil)

	resp, err := svc.GetByID(context.Background(), 30)
	require.NoError(t, err)
	assert.Len(t, resp.Pronunciations, 1)
}
