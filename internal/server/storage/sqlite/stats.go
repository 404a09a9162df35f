package sqlite

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/pkg/api"
)

// GetStats computes the dashboard summary in one pass of scalar queries.
// Revenue counts successful payments only.
func (s *Storage) GetStats(ctx context.Context) (*api.StatsResponse, error) {
	stats := &api.StatsResponse{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM subscriptions WHERE status = 'active'`, &stats.ActiveSubscriptions},
		{`SELECT COUNT(*) FROM videos`, &stats.TotalVideos},
		{`SELECT COUNT(*) FROM categories`, &stats.TotalCategories},
		{`SELECT COUNT(*) FROM creators`, &stats.TotalCreators},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to compute stats: %w", err)
		}
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'success'`,
	).Scan(&stats.Revenue)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}

	return stats, nil
}
