// Package observability carries an optional structured logger through a
// context.Context for the extraction and rendering pipeline. The core stays
// silent by default: [LoggerFromContext] returns a discard logger when none
// was attached, so library code can log unconditionally.
//
// The semconv.go file defines the standard attribute-key constants used when
// recording observations, keeping log output consistent across components.
package observability
