package services

import (
	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

var _ storage.Storage = (*MockStorage)(nil)

func (m *MockStorage) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockStorage) FindUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) FindUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SaveUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockStorage) FindCandidates(userID uint, filter storage.CandidateFilter) ([]models.User, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) UpsertSwipe(swiperID, swipeeID uint, liked bool) error {
	return m.Called(swiperID, swipeeID, liked).Error(0)
}

func (m *MockStorage) HasLiveLike(swiperID, swipeeID uint) (bool, error) {
	args := m.Called(swiperID, swipeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) HasMutualMatch(a, b uint) (bool, error) {
	args := m.Called(a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ListMatches(userID uint) ([]storage.MatchRow, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.MatchRow), args.Error(1)
}

func (m *MockStorage) SoftDeleteSwipePair(a, b uint) error {
	return m.Called(a, b).Error(0)
}

func (m *MockStorage) CreateMessage(msg *models.ChatMessage) error {
	return m.Called(msg).Error(0)
}

func (m *MockStorage) ListMessages(conversationKey string) ([]models.ChatMessage, error) {
	args := m.Called(conversationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) CreateBlock(blockerID, blockedID uint) (bool, error) {
	args := m.Called(blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) IsBlockedEitherDirection(a, b uint) (bool, error) {
	args := m.Called(a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CreateReport(report *models.Report) error {
	return m.Called(report).Error(0)
}

func (m *MockStorage) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) UpdateReportStatus(id uint, status, adminNote string) error {
	return m.Called(id, status, adminNote).Error(0)
}

func (m *MockStorage) AddPhoto(photo *models.UserPhoto) error {
	return m.Called(photo).Error(0)
}

func (m *MockStorage) FindPhoto(photoID, userID uint) (*models.UserPhoto, error) {
	args := m.Called(photoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPhoto), args.Error(1)
}

func (m *MockStorage) DeletePhoto(photoID, userID uint) error {
	return m.Called(photoID, userID).Error(0)
}

func (m *MockStorage) ListPhotos(userID uint) ([]models.UserPhoto, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserPhoto), args.Error(1)
}

func (m *MockStorage) SetProfilePic(photoID uint) error {
	return m.Called(photoID).Error(0)
}

func (m *MockStorage) ClearProfilePics(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *MockStorage) CreateRefreshToken(token *models.RefreshToken) error {
	return m.Called(token).Error(0)
}

func (m *MockStorage) FindRefreshToken(tokenHash string) (*models.RefreshToken, error) {
	args := m.Called(tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockStorage) RevokeRefreshToken(tokenHash string) error {
	return m.Called(tokenHash).Error(0)
}

// recordingNotifier captures hub events so tests can assert who was told.
type recordingNotifier struct {
	events []realtime.Event
}

func (n *recordingNotifier) Notify(ev realtime.Event) {
	n.events = append(n.events, ev)
}
