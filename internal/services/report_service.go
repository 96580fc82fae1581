package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
)

const DefaultReportLimit = 50

type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Submit stores a report. Reports are anonymous unless the caller opts out,
// and anonymous reports carry no user id.
func (s *ReportService) Submit(ctx context.Context, userID string, req *dto.SubmitReportRequest) (*models.CommunityReport, error) {
	switch {
	case req.Type == nil:
		return nil, required("type")
	case req.Severity == nil:
		return nil, required("severity")
	case req.Location == nil:
		return nil, required("location")
	case req.Description == nil:
		return nil, required("description")
	}

	anonymous := true
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}

	report := models.CommunityReport{
		ReportID:    NewID("report"),
		Type:        *req.Type,
		Severity:    *req.Severity,
		Location:    *req.Location,
		Description: *req.Description,
		Timestamp:   s.now(),
		Anonymous:   anonymous,
		Status:      models.ReportStatusPending,
	}
	if !anonymous {
		owner := userID
		report.UserID = &owner
	}

	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// List returns the newest reports first.
func (s *ReportService) List(ctx context.Context, limit int) ([]models.CommunityReport, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	reports := make([]models.CommunityReport, 0)
	if err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ParseLimit reads the limit query value; anything unparsable or non-positive
// becomes DefaultReportLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultReportLimit
	}
	return n
}
