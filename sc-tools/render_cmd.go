package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/sizechart"
	"github.com/thatisuday/commando"
)

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	desc := mustReadArg(args, "file")
	synth := mustSynthesizer(sizechart.Options{
		Chart:    chartOptions(flags),
		NoTables: mustFlagBool(flags["text-only"], "text-only"),
	})
	p := sizechart.Product{
		Title:           productTitle(flags, args["file"].Value),
		DescriptionHTML: desc,
	}
	c, err := synth.Synthesize(p)
	if err != nil {
		fatalf("%v", err)
	}
	out := mustWritePNG(flags, c.PNG)
	fmt.Printf("%s chart written to %s\n", c.Type, out)
}

func runTableCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	html := mustReadArg(args, "file")
	synth := mustSynthesizer(sizechart.Options{Chart: chartOptions(flags)})
	p := sizechart.Product{Title: productTitle(flags, args["file"].Value)}
	png, err := synth.Renderer().RenderFromHTMLTable(html, p.ChartProduct())
	if err != nil {
		fatalf("%v", err)
	}
	out := mustWritePNG(flags, png)
	fmt.Printf("%s chart written to %s\n", sizechart.FromHTMLTable, out)
}

func mustWritePNG(flags map[string]commando.FlagValue, png []byte) string {
	out, err := flags["output"].GetString()
	if err != nil {
		fatalf("invalid --output flag: %v", err)
	}
	if out = strings.TrimSpace(out); out == "" {
		fatalf("output path is empty")
	}
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("cannot create output directory: %v", err)
		}
	}
	if err := os.WriteFile(out, png, 0o644); err != nil {
		fatalf("cannot write %s: %v", out, err)
	}
	return out
}
