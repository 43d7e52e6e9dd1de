package capture

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// ParameterSummary describes the captured draws for one named parameter.
type ParameterSummary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Q05    float64
	Median float64
	Q95    float64
}

// Summarize computes per-parameter statistics over every named draw captured
// for the given topic, ordered by parameter name. Unnamed features (init
// vectors, free text) are excluded.
func (s *Store) Summarize(ctx context.Context, topic writerpb.WriterMessage_Topic) ([]ParameterSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.name, d.value
		FROM draws d
		JOIN frames f ON f.frame_id = d.frame_id
		WHERE f.run_id = ? AND f.topic = ? AND d.name IS NOT NULL
		ORDER BY d.name, d.frame_id, d.position`,
		s.runID, topic.String())
	if err != nil {
		return nil, fmt.Errorf("query draws: %w", err)
	}
	defer rows.Close()

	byName := make(map[string][]float64)
	var order []string
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan draw: %w", err)
		}
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draws: %w", err)
	}

	summaries := make([]ParameterSummary, 0, len(order))
	for _, name := range order {
		values := byName[name]
		sort.Float64s(values)
		summaries = append(summaries, ParameterSummary{
			Name:   name,
			Count:  len(values),
			Mean:   stat.Mean(values, nil),
			StdDev: stat.StdDev(values, nil),
			Q05:    stat.Quantile(0.05, stat.Empirical, values, nil),
			Median: stat.Quantile(0.5, stat.Empirical, values, nil),
			Q95:    stat.Quantile(0.95, stat.Empirical, values, nil),
		})
	}
	return summaries, nil
}
