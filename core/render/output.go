package render

import (
	"context"
	"log/slog"

	"github.com/promptforge/outputview/core/extract"
	"github.com/promptforge/outputview/providers/observability"
)

type outputConfig struct {
	extractOpts []extract.Option
	convertHTML bool
}

// Option configures the Output pipeline.
type Option func(*outputConfig)

// WithExtractOptions forwards options to the underlying extractor, e.g.
// extract.WithBalancedScan.
func WithExtractOptions(opts ...extract.Option) Option {
	return func(c *outputConfig) {
		c.extractOpts = append(c.extractOpts, opts...)
	}
}

// WithHTMLConversion converts input that looks like HTML markup to markdown
// before prose rendering. Some models answer in HTML despite instructions;
// without this option their tags would surface as literal paragraph text.
func WithHTMLConversion() Option {
	return func(c *outputConfig) {
		c.convertHTML = true
	}
}

// Output renders a raw model response into a single display node. If the
// extractor recovers a structured value, that value becomes the primary
// node, with any prefix/suffix prose the extractor peeled off rendered
// around it; otherwise the whole input is rendered as prose.
//
// Output never fails: for any finite input it returns a displayable node.
func Output(raw string, opts ...Option) Node {
	return OutputContext(context.Background(), raw, opts...)
}

// OutputContext is Output with a context carrying an optional observability
// logger; the chosen extraction strategy (or the prose fallback) is reported
// at debug level.
func OutputContext(ctx context.Context, raw string, opts ...Option) Node {
	cfg := outputConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := observability.LoggerFromContext(ctx)

	res, ok := extract.Extract(raw, cfg.extractOpts...)
	if !ok {
		text := raw
		if cfg.convertHTML {
			text = normalizeHTML(text)
		}
		blocks := Prose(text)
		log.Debug("no structured value recovered, rendering prose",
			slog.Int(observability.AttrInputLength, len(raw)),
			slog.Int(observability.AttrRenderBlocks, len(blocks)),
		)
		return List{Items: blocks}
	}

	log.Debug("structured value recovered",
		slog.String(observability.AttrExtractStrategy, res.Strategy.String()),
		slog.Int(observability.AttrExtractPrefixLen, len(res.Prefix)),
		slog.Int(observability.AttrExtractSuffixLen, len(res.Suffix)),
	)

	value := Value(res.Value, 0)
	if res.Prefix == "" && res.Suffix == "" {
		return value
	}

	var items []Node
	if res.Prefix != "" {
		items = append(items, Prose(res.Prefix)...)
	}
	items = append(items, value)
	if res.Suffix != "" {
		items = append(items, Prose(res.Suffix)...)
	}
	return List{Items: items}
}
