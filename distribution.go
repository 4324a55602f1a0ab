package ddog

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DistributionPoint pairs a timestamp with the sampled values observed at
// that timestamp.
type DistributionPoint struct {
	Timestamp int64
	Values    []float64
}

// MarshalJSON encodes the point as the two-element [timestamp, values] array
// the intake expects.
func (p DistributionPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Timestamp, p.Values})
}

// DistributionMetric is one metric's worth of distribution points.
type DistributionMetric struct {
	Metric string              `json:"metric"`
	Points []DistributionPoint `json:"points"`
	Host   string              `json:"host,omitempty"`
	Tags   []string            `json:"tags,omitempty"`
}

// Distribution is the route submitting distribution points. The intake path
// lives under /api/v1 but remains reachable from either version selection.
type Distribution struct {
	version ApiVersion
	series  []DistributionMetric
}

func newDistribution(v ApiVersion) (*Distribution, error) {
	switch v {
	case V1, V2:
		return &Distribution{version: v}, nil
	default:
		return nil, &UnsupportedVersionError{Version: v, Route: "distribution points"}
	}
}

// AddMetric appends one metric entry to the submission.
func (d *Distribution) AddMetric(m DistributionMetric) *Distribution {
	d.series = append(d.series, m)
	return d
}

func (d *Distribution) Endpoint() (string, string, []byte, error) {
	body, err := json.Marshal(struct {
		Series []DistributionMetric `json:"series"`
	}{Series: d.series})
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to encode distribution body: %w", err)
	}

	return http.MethodPost, "/api/v1/distribution_points", body, nil
}
