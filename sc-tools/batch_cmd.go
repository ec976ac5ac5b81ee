package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/npillmayer/sizechart"
	"github.com/npillmayer/sizechart/batch"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runBatchCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	path := strings.TrimSpace(args["products"].Value)
	f, err := os.Open(path)
	if err != nil {
		fatalf("%v", err)
	}
	products, err := batch.ReadProducts(f)
	f.Close()
	if err != nil {
		fatalf("%v", err)
	}
	dir, err := flags["out"].GetString()
	if err != nil {
		fatalf("invalid --out flag: %v", err)
	}
	synth := mustSynthesizer(sizechart.Options{Chart: chartOptions(flags)})
	conf := batch.Config{
		Delay:    time.Duration(mustFlagInt(flags["delay"], "delay")) * time.Millisecond,
		Position: mustFlagInt(flags["position"], "position"),
	}
	conf.Progress = func(done, total int) {
		pterm.Printf("\rSize charts: %d/%d", done, total)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := batch.NewProcessor(synth, batch.FilePlatform{Dir: dir}, conf).Run(ctx, products)
	pterm.Println()
	for _, r := range results {
		if !r.Success {
			fmt.Println(r)
		}
	}
	fmt.Println(batch.Summarize(results))
	if err != nil {
		fatalf("%v", err)
	}
}
