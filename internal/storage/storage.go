package storage

import (
	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm"
)

// MatchRow is one entry of a user's match list: the counterpart's id plus
// the profile fields the client renders next to it.
type MatchRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	PhotoURL *string `json:"photo_url"`
}

// Candidate filters for suggestion queries. Nil fields are not applied.
type CandidateFilter struct {
	SportType *string
	MinAge    *int
	MaxAge    *int
	Limit     int
}

type Storage interface {
	// Users
	CreateUser(user *models.User) error
	FindUserByID(id uint) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	SaveUser(user *models.User) error
	FindCandidates(userID uint, filter CandidateFilter) ([]models.User, error)

	// Swipes
	UpsertSwipe(swiperID, swipeeID uint, liked bool) error
	HasLiveLike(swiperID, swipeeID uint) (bool, error)
	HasMutualMatch(a, b uint) (bool, error)
	ListMatches(userID uint) ([]MatchRow, error)
	SoftDeleteSwipePair(a, b uint) error

	// Chats
	CreateMessage(msg *models.ChatMessage) error
	ListMessages(conversationKey string) ([]models.ChatMessage, error)

	// Blocks & reports
	CreateBlock(blockerID, blockedID uint) (created bool, err error)
	IsBlockedEitherDirection(a, b uint) (bool, error)
	CreateReport(report *models.Report) error
	ListReports(status string, limit, offset int) ([]models.Report, int64, error)
	UpdateReportStatus(id uint, status, adminNote string) error

	// Photos
	AddPhoto(photo *models.UserPhoto) error
	FindPhoto(photoID, userID uint) (*models.UserPhoto, error)
	DeletePhoto(photoID, userID uint) error
	ListPhotos(userID uint) ([]models.UserPhoto, error)
	SetProfilePic(photoID uint) error
	ClearProfilePics(userID uint) error

	// Refresh tokens
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(tokenHash string) (*models.RefreshToken, error)
	RevokeRefreshToken(tokenHash string) error
}

// Service is the PostgreSQL-backed Storage implementation.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

var _ Storage = (*Service)(nil)
