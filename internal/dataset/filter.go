package dataset

import (
	"fmt"
	"sort"

	"github.com/iwvelando/income-explorer/internal/catalog"
	"github.com/iwvelando/income-explorer/pkg/percentile"
)

// NoDataError indicates that a selection matched no observations. It is
// user-visible and non-fatal; the caller reports it and awaits new inputs.
type NoDataError struct {
	Variable string
	Year     int
	Group    string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data available for variable %s, year %d, group %s",
		e.Variable, e.Year, e.Group)
}

// Filter selects the observations matching a variable and year whose band
// label belongs to the named grouping mode. An empty result is returned as
// an empty slice, not an error. Output order is deterministic regardless of
// input order: ascending by parsed band bounds, then by label.
func Filter(observations []Observation, variable string, year int, groupName string) ([]Observation, error) {
	labels, ok := catalog.Group(groupName)
	if !ok {
		return nil, fmt.Errorf("unknown percentile group %q", groupName)
	}

	members := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		members[label] = struct{}{}
	}

	var matched []Observation
	for _, obs := range observations {
		if obs.Variable != variable || obs.Year != year {
			continue
		}
		if _, ok := members[obs.Percentile]; !ok {
			continue
		}
		matched = append(matched, obs)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, errA := percentile.Parse(matched[i].Percentile)
		b, errB := percentile.Parse(matched[j].Percentile)
		// Group membership guarantees parseability; fall back to the
		// label for full determinism anyway.
		if errA != nil || errB != nil {
			return matched[i].Percentile < matched[j].Percentile
		}
		if a.Lower != b.Lower {
			return a.Lower < b.Lower
		}
		if a.Upper != b.Upper {
			return a.Upper < b.Upper
		}
		return matched[i].Percentile < matched[j].Percentile
	})

	return matched, nil
}

// Points parses the band label of each observation, producing points
// ordered by the band's lower bound.
func Points(observations []Observation) ([]Point, error) {
	points := make([]Point, 0, len(observations))
	for _, obs := range observations {
		band, err := percentile.Parse(obs.Percentile)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Band: band, Value: obs.Value})
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Band.Lower != points[j].Band.Lower {
			return points[i].Band.Lower < points[j].Band.Lower
		}
		return points[i].Band.Upper < points[j].Band.Upper
	})
	return points, nil
}

// ClipPoints keeps the points whose lower bound falls within [start, end].
func ClipPoints(points []Point, start, end float64) []Point {
	clipped := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Band.Lower >= start && p.Band.Lower <= end {
			clipped = append(clipped, p)
		}
	}
	return clipped
}
