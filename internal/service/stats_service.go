package service

import (
	"context"
	"database/sql"

	"github.com/fedora-infra/spechub/internal/repository/stats"
)

// Stats summarises the store.
type Stats struct {
	Overall   *stats.OverallStats `json:"overall"`
	ByStatus  []stats.StatusCount `json:"by_status"`
	ByProject []stats.ProjectStat `json:"by_project"`
}

// StatsService handles statistics business logic.
type StatsService struct {
	db *sql.DB
}

// NewStatsService creates a new stats service.
func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStatistics returns store-wide counts.
func (s *StatsService) GetStatistics(ctx context.Context) (*Stats, error) {
	overall, err := stats.GetOverallStats(ctx, s.db)
	if err != nil {
		return nil, err
	}

	byStatus, err := stats.GetStatusStats(ctx, s.db)
	if err != nil {
		return nil, err
	}

	byProject, err := stats.GetProjectStats(ctx, s.db)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Overall:   overall,
		ByStatus:  byStatus,
		ByProject: byProject,
	}, nil
}
