package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Extraction Attributes ---

const (
	// AttrExtractStrategy is the recovery strategy that matched
	// (e.g., "whole", "fenced", "embedded")
	AttrExtractStrategy = "extract.strategy"

	// AttrExtractPrefixLen is the length of the prose prefix peeled off
	// before the recognized JSON span
	AttrExtractPrefixLen = "extract.prefix_len"

	// AttrExtractSuffixLen is the length of the prose suffix peeled off
	// after the recognized JSON span
	AttrExtractSuffixLen = "extract.suffix_len"
)

// --- Rendering Attributes ---

const (
	// AttrInputLength is the length of the raw model output in bytes
	AttrInputLength = "input.length"

	// AttrRenderBlocks is the number of block-level nodes produced by the
	// prose renderer
	AttrRenderBlocks = "render.blocks"
)
