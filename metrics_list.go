package ddog

import (
	"net/http"
	"net/url"
	"strconv"
)

// MetricsList is the route listing metrics that actively reported datapoints
// since a point in time. The listing path lives under /api/v1 but remains
// reachable from either version selection.
type MetricsList struct {
	version   ApiVersion
	from      int64
	host      string
	tagFilter string
}

func newMetricsList(v ApiVersion) (*MetricsList, error) {
	switch v {
	case V1, V2:
		return &MetricsList{version: v}, nil
	default:
		return nil, &UnsupportedVersionError{Version: v, Route: "metrics listing"}
	}
}

// SetFrom sets the epoch-seconds offset metrics must have reported after.
func (m *MetricsList) SetFrom(from int64) *MetricsList {
	m.from = from
	return m
}

// SetHost restricts the listing to metrics reported by the given host. The
// empty string disables the restriction.
func (m *MetricsList) SetHost(host string) *MetricsList {
	m.host = host
	return m
}

// SetTagFilter restricts the listing to metrics carrying the given tag, e.g.
// "env:prod". The empty string disables the restriction.
func (m *MetricsList) SetTagFilter(tagFilter string) *MetricsList {
	m.tagFilter = tagFilter
	return m
}

// From returns the configured pagination offset.
func (m *MetricsList) From() int64 {
	return m.from
}

// Host returns the configured host filter, empty when unset.
func (m *MetricsList) Host() string {
	return m.host
}

// TagFilter returns the configured tag filter, empty when unset.
func (m *MetricsList) TagFilter() string {
	return m.tagFilter
}

func (m *MetricsList) Endpoint() (string, string, []byte, error) {
	query := url.Values{}
	query.Set("from", strconv.FormatInt(m.from, 10))

	if m.host != "" {
		query.Set("host", m.host)
	}

	if m.tagFilter != "" {
		query.Set("tag_filter", m.tagFilter)
	}

	return http.MethodGet, "/api/v1/metrics?" + query.Encode(), nil, nil
}
