// Package render turns model output into a display tree of typed nodes.
//
// Two builders cooperate: [Value] recursively renders any JSON value
// (scalars, scalar lists, mixed arrays, nested objects) into a [Node], and
// [Prose] renders free text through a minimal markdown subset (three heading
// levels, bullet and numbered runs, **bold** spans, paragraphs).
//
// [Output] composes them with the extractor: if a structured value is
// recovered from the raw string it becomes the primary node, with any prose
// the extractor peeled off rendered around it; otherwise the whole input
// goes through the prose path. The pipeline never fails — unparsable input
// degrades silently to formatted prose.
//
// Nodes are pure presentation data. How they are drawn (indentation, badge
// colors, spacing) belongs to the consuming display layer; [Text] provides a
// plain-text form for debugging and CLI use.
package render
