package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sizechart"
	"github.com/npillmayer/sizechart/chart"
	"github.com/npillmayer/sizechart/style"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("sc-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for extracting measurements from product descriptions and rendering size charts.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("extract").
		SetDescription("Extract the measurement table from a product description file.").
		SetShortDescription("extract measurements").
		AddArgument("file", "file holding a product description (text or HTML)", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runExtractCommand)

	commando.
		Register("facts").
		SetDescription("Print the product facts (material, care, ...) of a product description file.").
		SetShortDescription("product facts").
		AddArgument("file", "file holding a product description (text or HTML)", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runFactsCommand)

	withChartFlags(commando.
		Register("render").
		SetDescription("Render a size chart PNG from a product description file.").
		SetShortDescription("render a size chart").
		AddArgument("file", "file holding a product description (text or HTML)", "").
		AddFlag("output,o", "output PNG file", commando.String, "size-chart.png").
		AddFlag("title,t", "product title", commando.String, "-").
		AddFlag("text-only", "ignore HTML tables in the description", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)).
		SetAction(runRenderCommand)

	withChartFlags(commando.
		Register("table").
		SetDescription("Render a size chart PNG from a file holding an HTML <table>.").
		SetShortDescription("render an HTML table").
		AddArgument("file", "file holding an HTML table", "").
		AddFlag("output,o", "output PNG file", commando.String, "size-chart.png").
		AddFlag("title,t", "product title", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)).
		SetAction(runTableCommand)

	withChartFlags(commando.
		Register("batch").
		SetDescription("Create size charts for a list of products (YAML or JSON) and store them in a directory.").
		SetShortDescription("process a product list").
		AddArgument("products", "file holding a list of products", "").
		AddFlag("out,o", "output directory for charts", commando.String, "charts").
		AddFlag("delay,d", "pause between products in milliseconds (0 uses default)", commando.Int, 0).
		AddFlag("position,p", "image position of uploaded charts", commando.Int, 0).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)).
		SetAction(runBatchCommand)

	commando.Parse(nil)
}

// withChartFlags adds the flags shared by all rendering commands.
func withChartFlags(cmd *commando.Command) *commando.Command {
	return cmd.
		AddFlag("logo,l", "logo image file or http(s) URL", commando.String, "-").
		AddFlag("brand,b", "brand name for the text logo", commando.String, "-").
		AddFlag("style,s", "YAML file with style parameters", commando.String, "-").
		AddFlag("font", "OpenType font for regular text", commando.String, "-").
		AddFlag("boldfont", "OpenType font for bold text", commando.String, "-")
}

// setupTracing configures tracing to the Go log. Extraction and rendering
// are traced in verbose mode only.
func setupTracing(flags map[string]commando.FlagValue) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if mustFlagBool(flags["verbose"], "verbose") {
		level = "Info"
	}
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.sizechart":         "Info",
		"trace.sizechart.batch":   "Info",
		"trace.sizechart.measure": level,
		"trace.sizechart.chart":   level,
		"trace.sizechart.style":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// chartOptions collects renderer options from the flags shared by all
// rendering commands.
func chartOptions(flags map[string]commando.FlagValue) chart.Options {
	var o style.Overrides
	if path := optFlagString(flags["style"], "style"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		if o, err = style.LoadYAML(f); err != nil {
			fatalf("%s: %v", path, err)
		}
	}
	if brand := optFlagString(flags["brand"], "brand"); brand != "" {
		o.BrandName = style.Some(brand)
	}
	return chart.Options{
		Overrides:       o,
		Logo:            optFlagString(flags["logo"], "logo"),
		RegularFontFile: optFlagString(flags["font"], "font"),
		BoldFontFile:    optFlagString(flags["boldfont"], "boldfont"),
	}
}

func mustSynthesizer(opts sizechart.Options) *sizechart.Synthesizer {
	synth, err := sizechart.New(opts)
	if err != nil {
		fatalf("%v", err)
	}
	return synth
}

func mustReadArg(args map[string]commando.ArgValue, name string) string {
	path := strings.TrimSpace(args[name].Value)
	if path == "" {
		fatalf("%s is required", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	return string(data)
}

func productTitle(flags map[string]commando.FlagValue, file string) string {
	if title := optFlagString(flags["title"], "title"); title != "" {
		return title
	}
	return file
}

// optFlagString reads a string flag with default "-", which means unset.
func optFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "sc-tools: "+format+"\n", args...)
	os.Exit(1)
}
