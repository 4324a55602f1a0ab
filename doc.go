// Package ddog is a typed query builder and HTTP client for the Datadog
// monitoring API: metric series submission, distribution points, tag
// configuration and metric listing.
//
// A Builder selects an api version, accumulates request headers and produces
// Route values; a Route describes a single endpoint call (method, path,
// serialized body); a Client executes routes and returns the response status
// and body.
//
//	logger := logging.New(logging.NewTextHandler(logging.TextHandlerConfig{}))
//
//	client, err := ddog.NewClient(ddog.ConfigFromEnv(), logger)
//	if err != nil {
//		return err
//	}
//
//	builder := ddog.NewBuilder(ddog.WithLogger(logger))
//	route, err := builder.V2().
//		WithHeaders(ddog.Header{Name: ddog.HeaderAccept, Value: "application/json"}).
//		CreateTagConfig("my.metric.name")
//	if err != nil {
//		return err
//	}
//
//	status, body, err := client.Do(ctx, route, builder.Headers()...)
package ddog
