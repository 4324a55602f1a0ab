package ddog

import (
	"encoding/json"

	"github.com/castai/logging"
	"github.com/tidwall/gjson"
)

// BuilderOption configures a Builder at construction time.
type BuilderOption func(*Builder)

// WithLogger attaches a logger used to report failed route construction.
// Without it the builder stays silent and only returns errors.
func WithLogger(logger *logging.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// Builder accumulates request configuration for the monitoring API and
// produces Route values for its endpoints. A Builder selects an api version,
// collects request headers, and exposes one method per endpoint; each of
// those methods either returns a fully configured route or an
// *UnsupportedVersionError when the selected version does not serve that
// endpoint.
//
// Example:
//
//	builder := ddog.NewBuilder()
//	route, err := builder.V2().
//		WithHeaders(
//			ddog.Header{Name: ddog.HeaderAccept, Value: "application/json"},
//			ddog.Header{Name: ddog.HeaderContentType, Value: "application/json"},
//		).
//		CreateTagConfig("my.metric.name")
//	if err != nil {
//		return err
//	}
//	status, body, err := client.Do(ctx, route, builder.Headers()...)
type Builder struct {
	version ApiVersion
	headers []Header
	logger  *logging.Logger
}

// NewBuilder creates a Builder with no version selected and no headers.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// V1 selects api version v1.
func (b *Builder) V1() *Builder {
	b.version = V1
	return b
}

// V2 selects api version v2.
func (b *Builder) V2() *Builder {
	b.version = V2
	return b
}

// Version returns the currently selected api version.
func (b *Builder) Version() ApiVersion {
	return b.version
}

// WithHeaders appends header pairs to the builder. Insertion order is
// preserved and duplicate names are retained; nothing is validated or
// deduplicated.
func (b *Builder) WithHeaders(headers ...Header) *Builder {
	b.headers = append(b.headers, headers...)
	return b
}

// Headers returns the accumulated header pairs in insertion order.
func (b *Builder) Headers() []Header {
	return b.headers
}

// Clone returns an independent copy of the builder. Mutating the copy or the
// original afterwards does not affect the other.
func (b *Builder) Clone() *Builder {
	clone := &Builder{
		version: b.version,
		logger:  b.logger,
	}

	if len(b.headers) > 0 {
		clone.headers = make([]Header, len(b.headers))
		copy(clone.headers, b.headers)
	}

	return clone
}

// CreateTagConfig returns a route creating a tag configuration for the named
// metric. Available under v2 only.
func (b *Builder) CreateTagConfig(metricName string) (*TagConfig, error) {
	route, err := newTagConfig(b.version, metricName)
	if err != nil {
		b.errorf("failed to create tag config route for api version %s: %v", b.version, err)
		return nil, err
	}

	return route, nil
}

// PostSeries returns a route submitting series datapoints. Available under
// v2 only.
func (b *Builder) PostSeries() (*Series, error) {
	route, err := newSeries(b.version)
	if err != nil {
		b.errorf("failed to create series route for api version %s: %v", b.version, err)
		return nil, err
	}

	return route, nil
}

// PostDistribution returns a route submitting distribution points.
func (b *Builder) PostDistribution() (*Distribution, error) {
	route, err := newDistribution(b.version)
	if err != nil {
		b.errorf("failed to create distribution route for api version %s: %v", b.version, err)
		return nil, err
	}

	return route, nil
}

// GetMetrics returns a route listing actively reporting metrics, configured
// with the given pagination offset. The empty string for host or tagFilter
// means no filtering on that dimension.
func (b *Builder) GetMetrics(from int64, host, tagFilter string) (*MetricsList, error) {
	route, err := newMetricsList(b.version)
	if err != nil {
		b.errorf("failed to create metrics listing route for api version %s: %v", b.version, err)
		return nil, err
	}

	return route.SetFrom(from).SetHost(host).SetTagFilter(tagFilter), nil
}

func (b *Builder) errorf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Errorf(format, args...)
	}
}

// ValidateJSON reports whether body is valid JSON, returning nil when it is
// and the parse error otherwise. It depends on no builder state.
func ValidateJSON(body string) error {
	if gjson.Valid(body) {
		return nil
	}

	var v any
	return json.Unmarshal([]byte(body), &v)
}
