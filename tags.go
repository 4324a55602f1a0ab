package ddog

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// tagConfigResourceType is the resource type the tag configuration endpoint
// expects in the request body.
const tagConfigResourceType = "manage_tags"

// TagConfig is the route creating a tag configuration for a single metric,
// restricting which tag keys the metric is queryable by. Served under v2.
type TagConfig struct {
	version    ApiVersion
	metricName string
	metricType string
	tags       []string
}

func newTagConfig(v ApiVersion, metricName string) (*TagConfig, error) {
	if v != V2 {
		return nil, &UnsupportedVersionError{Version: v, Route: "tag config"}
	}

	return &TagConfig{
		version:    v,
		metricName: metricName,
		tags:       []string{},
	}, nil
}

// MetricName returns the metric the configuration applies to.
func (t *TagConfig) MetricName() string {
	return t.metricName
}

// SetMetricType sets the metric type reported in the configuration,
// e.g. "gauge" or "count".
func (t *TagConfig) SetMetricType(metricType string) *TagConfig {
	t.metricType = metricType
	return t
}

// SetTags replaces the set of tag keys allowed for the metric.
func (t *TagConfig) SetTags(tags ...string) *TagConfig {
	t.tags = tags
	return t
}

type tagConfigAttributes struct {
	Tags       []string `json:"tags"`
	MetricType string   `json:"metric_type,omitempty"`
}

type tagConfigData struct {
	Type       string              `json:"type"`
	ID         string              `json:"id"`
	Attributes tagConfigAttributes `json:"attributes"`
}

func (t *TagConfig) Endpoint() (string, string, []byte, error) {
	body, err := json.Marshal(struct {
		Data tagConfigData `json:"data"`
	}{
		Data: tagConfigData{
			Type: tagConfigResourceType,
			ID:   t.metricName,
			Attributes: tagConfigAttributes{
				Tags:       t.tags,
				MetricType: t.metricType,
			},
		},
	})
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to encode tag config body: %w", err)
	}

	return http.MethodPost, fmt.Sprintf("/api/v2/metrics/%s/tags", t.metricName), body, nil
}
