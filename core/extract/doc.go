// Package extract recovers structured JSON values from raw language-model
// output. Model responses are rarely clean: the same answer may arrive as a
// bare JSON document, as JSON wrapped in a markdown code fence, or as JSON
// buried inside surrounding prose. [Extract] tries these shapes in a fixed
// priority order and returns the decoded value together with whatever prose
// preceded and followed the recognized JSON span.
//
// Extraction is best-effort: failure is a normal outcome signalled with a
// comma-ok bool, never an error. Callers are expected to fall back to prose
// rendering when nothing structured can be recovered.
//
// For call sites that expect a specific response shape, [As] decodes the
// recovered span (or, failing extraction, the raw string) directly into a
// caller-defined Go type, repairing malformed JSON along the way.
package extract
