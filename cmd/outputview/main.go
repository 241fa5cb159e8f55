// Command outputview is a debug tool for the extraction and rendering
// pipeline: it reads a raw model response on stdin and prints the rendered
// display tree as text, or the extraction result as JSON with -json.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/promptforge/outputview/core/extract"
	"github.com/promptforge/outputview/core/render"
	"github.com/promptforge/outputview/providers/observability"
	"github.com/promptforge/outputview/providers/observability/slogobs"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	asJSON := flag.Bool("json", false, "print the extraction result as JSON instead of the rendered tree")
	balanced := flag.Bool("balanced", false, "use the balanced bracket scan for embedded JSON")
	html := flag.Bool("html", false, "convert HTML-looking input to markdown before prose rendering")
	verbose := flag.Bool("v", false, "log pipeline decisions to stderr")
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read stdin:", err)
		os.Exit(1)
	}
	raw := string(input)

	var extractOpts []extract.Option
	if *balanced {
		extractOpts = append(extractOpts, extract.WithBalancedScan())
	}

	if *asJSON {
		res, ok := extract.Extract(raw, extractOpts...)
		out := map[string]any{"structured": ok}
		if ok {
			out["strategy"] = res.Strategy.String()
			out["value"] = res.Value
			out["prefix"] = res.Prefix
			out["suffix"] = res.Suffix
		}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "encode result:", err)
			os.Exit(1)
		}
		fmt.Println(string(encoded))
		return
	}

	ctx := context.Background()
	opts := []render.Option{render.WithExtractOptions(extractOpts...)}
	if *html {
		opts = append(opts, render.WithHTMLConversion())
	}
	if *verbose {
		logger := slogobs.NewFromEnv(os.Stderr, slog.LevelDebug)
		ctx = observability.ContextWithLogger(ctx, logger)
	}
	fmt.Print(render.Text(render.OutputContext(ctx, raw, opts...)))
}
