package stats

import (
	"context"
	"fmt"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
)

// StatusCount is the number of pull requests in one status.
type StatusCount struct {
	Status domain.PRStatus `json:"status"`
	Count  int64           `json:"count"`
}

// ProjectStat counts pull requests opened against a project.
type ProjectStat struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Owner     string `json:"owner,omitempty"`
	Count     int64  `json:"pull_requests"`
}

// OverallStats represents overall statistics.
type OverallStats struct {
	TotalUsers    int64 `json:"users"`
	TotalProjects int64 `json:"projects"`
	TotalForks    int64 `json:"forks"`
	TotalPRs      int64 `json:"pull_requests"`
	TotalComments int64 `json:"comments"`
}

// GetOverallStats returns overall statistics.
func GetOverallStats(ctx context.Context, exec repository.DBTX) (*OverallStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM projects) AS total_projects,
			(SELECT COUNT(*) FROM projects WHERE parent_id IS NOT NULL) AS total_forks,
			(SELECT COUNT(*) FROM pull_requests) AS total_prs,
			(SELECT COUNT(*) FROM pull_request_comments) AS total_comments
	`
	var stats OverallStats
	err := exec.QueryRowContext(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalProjects,
		&stats.TotalForks,
		&stats.TotalPRs,
		&stats.TotalComments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}

	return &stats, nil
}

// GetStatusStats returns the number of pull requests per status.
// Statuses without requests are reported with a zero count.
func GetStatusStats(ctx context.Context, exec repository.DBTX) ([]StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM pull_requests GROUP BY status`
	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get status stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[domain.PRStatus]int64, len(domain.Statuses))
	for rows.Next() {
		var status domain.PRStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status stat: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	stats := make([]StatusCount, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		stats = append(stats, StatusCount{Status: s, Count: counts[s]})
	}
	return stats, nil
}

// GetProjectStats returns pull request counts per target project, busiest first.
func GetProjectStats(ctx context.Context, exec repository.DBTX) ([]ProjectStat, error) {
	query := `
		SELECT p.id, p.name, COALESCE(u.name, ''), COUNT(pr.id) AS pr_count
		FROM projects p
		LEFT JOIN users u ON u.id = p.user_id
		JOIN pull_requests pr ON pr.project_id = p.id
		GROUP BY p.id, p.name, u.name
		ORDER BY pr_count DESC, p.id
	`
	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get project stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := make([]ProjectStat, 0)
	for rows.Next() {
		var stat ProjectStat
		if err := rows.Scan(&stat.ProjectID, &stat.Name, &stat.Owner, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan project stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
