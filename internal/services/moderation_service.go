package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
)

var (
	ErrReasonRequired = errors.New("reason is required")
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidStatus  = errors.New("invalid status: must be reviewed, actioned, or dismissed")
)

// ModerationService covers the block registry and the report audit log.
// Blocks are consulted by candidate suggestion only; they have an
// independent lifecycle from swipes and matches.
type ModerationService struct {
	store storage.Storage
}

func NewModerationService(store storage.Storage) *ModerationService {
	return &ModerationService{store: store}
}

// Block inserts the directional block. Idempotent: blocking an already
// blocked user succeeds and reports alreadyBlocked instead of failing.
func (s *ModerationService) Block(blockerID, blockedID uint) (alreadyBlocked bool, err error) {
	if blockerID == blockedID {
		return false, ErrSelfBlock
	}
	created, err := s.store.CreateBlock(blockerID, blockedID)
	if err != nil {
		return false, err
	}
	if !created {
		slog.Info("user was already blocked", "blocker", blockerID, "blocked", blockedID)
		return true, nil
	}
	slog.Info("user blocked", "blocker", blockerID, "blocked", blockedID)
	return false, nil
}

func (s *ModerationService) IsBlockedEitherDirection(a, b uint) (bool, error) {
	return s.store.IsBlockedEitherDirection(a, b)
}

// Report appends an audit record. It has no effect on any other state.
func (s *ModerationService) Report(reporterID, reportedID uint, reason string) (*models.Report, error) {
	if reporterID == reportedID {
		return nil, ErrSelfReport
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	report := models.Report{
		ReporterID: reporterID,
		ReportedID: reportedID,
		Reason:     reason,
		Status:     "pending",
	}
	if err := s.store.CreateReport(&report); err != nil {
		return nil, err
	}
	slog.Info("user reported", "reporter", reporterID, "reported", reportedID)
	return &report, nil
}

func (s *ModerationService) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	return s.store.ListReports(status, limit, offset)
}

func (s *ModerationService) ActionReport(reportID uint, status, adminNote string) error {
	validStatuses := map[string]bool{"reviewed": true, "actioned": true, "dismissed": true}
	if !validStatuses[status] {
		return ErrInvalidStatus
	}

	err := s.store.UpdateReportStatus(reportID, status, adminNote)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrReportNotFound
	}
	return err
}
