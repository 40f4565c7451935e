package render

// RenderOptions carries per-request data that is not part of the chart
// model itself.
type RenderOptions struct {
	// RequestID identifies the originating request for logs and embedded
	// metadata.
	RequestID string
}
