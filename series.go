package ddog

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MetricType enumerates the intake types accepted for series points.
type MetricType int

const (
	MetricTypeUnspecified MetricType = iota
	MetricTypeCount
	MetricTypeRate
	MetricTypeGauge
)

// SeriesPoint is a single timestamped value. Timestamp is seconds since the
// epoch.
type SeriesPoint struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// SeriesResource associates a series with a resource such as a host.
type SeriesResource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SeriesMetric is one metric's worth of datapoints within a series
// submission.
type SeriesMetric struct {
	Metric    string           `json:"metric"`
	Type      MetricType       `json:"type"`
	Points    []SeriesPoint    `json:"points"`
	Tags      []string         `json:"tags,omitempty"`
	Resources []SeriesResource `json:"resources,omitempty"`
}

// Series is the route submitting series datapoints to the metrics intake.
// Served under v2.
type Series struct {
	version ApiVersion
	series  []SeriesMetric
}

func newSeries(v ApiVersion) (*Series, error) {
	if v != V2 {
		return nil, &UnsupportedVersionError{Version: v, Route: "series"}
	}

	return &Series{version: v}, nil
}

// AddMetric appends one metric entry to the submission.
func (s *Series) AddMetric(m SeriesMetric) *Series {
	s.series = append(s.series, m)
	return s
}

func (s *Series) Endpoint() (string, string, []byte, error) {
	body, err := json.Marshal(struct {
		Series []SeriesMetric `json:"series"`
	}{Series: s.series})
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to encode series body: %w", err)
	}

	return http.MethodPost, "/api/v2/series", body, nil
}
