package batch

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/sizechart"
)

// Pacing and retry defaults.
const (
	DefaultDelay    = 500 * time.Millisecond
	LargeBatchDelay = 800 * time.Millisecond // for batches of more than LargeBatch products
	LargeBatch      = 1000
	UploadAttempts  = 3
	RetryWait       = time.Second
	progressEvery   = 100
)

// Synthesizer creates size charts. It is implemented by
// *sizechart.Synthesizer.
type Synthesizer interface {
	Synthesize(p sizechart.Product) (*sizechart.Chart, error)
}

// Config configures a Processor. Zero values select the defaults.
type Config struct {
	Delay     time.Duration // pause between products
	Attempts  int           // upload attempts per product
	RetryWait time.Duration // pause between upload attempts
	Position  int           // image position of uploaded charts
	Progress  func(done, total int)
}

// Result is the outcome of processing a single product.
// A product has either been uploaded successfully, or been skipped, or has
// failed; Err tells why it has not been uploaded.
type Result struct {
	ProductID    string
	ProductTitle string
	Success      bool
	Skipped      bool
	Uploaded     bool
	ChartType    string
	Err          error
}

func (r Result) String() string {
	switch {
	case r.Success:
		return fmt.Sprintf("%s: uploaded %s chart", r.ProductTitle, r.ChartType)
	case r.Skipped:
		return fmt.Sprintf("%s: skipped: %v", r.ProductTitle, r.Err)
	}
	return fmt.Sprintf("%s: failed: %v", r.ProductTitle, r.Err)
}

// Summary counts results.
type Summary struct {
	Total, Successful, Failed, Skipped int
}

// Summarize counts a list of results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Success:
			s.Successful++
		case r.Skipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d products: %d successful, %d failed, %d skipped",
		s.Total, s.Successful, s.Failed, s.Skipped)
}

// Processor creates and uploads size charts for lists of products.
type Processor struct {
	synth    Synthesizer
	platform Platform
	conf     Config
}

// NewProcessor creates a processor. conf may be the zero value.
func NewProcessor(synth Synthesizer, platform Platform, conf Config) *Processor {
	if conf.Attempts <= 0 {
		conf.Attempts = UploadAttempts
	}
	if conf.RetryWait <= 0 {
		conf.RetryWait = RetryWait
	}
	return &Processor{synth: synth, platform: platform, conf: conf}
}

// Run processes products one after another. It returns a result for every
// product processed. If ctx is cancelled, Run stops between two products and
// returns the results so far together with the context's error.
func (p *Processor) Run(ctx context.Context, products []sizechart.Product) ([]Result, error) {
	delay := p.delay(len(products))
	tracer().Infof("processing %d products, %v apart", len(products), delay)
	results := make([]Result, 0, len(products))
	for i, product := range products {
		if p.conf.Progress != nil {
			p.conf.Progress(i+1, len(products))
		}
		if i > 0 && i%progressEvery == 0 {
			tracer().Infof("progress: %d/%d, %v", i, len(products), Summarize(results))
		}
		r := p.Process(ctx, product)
		results = append(results, r)
		tracer().Debugf("%v", r)
		if i+1 < len(products) {
			if err := sleep(ctx, delay); err != nil {
				tracer().Errorf("batch cancelled after %d products: %v", len(results), err)
				return results, err
			}
		}
	}
	tracer().Infof("completed: %v", Summarize(results))
	return results, nil
}

func (p *Processor) delay(n int) time.Duration {
	switch {
	case p.conf.Delay > 0:
		return p.conf.Delay
	case n > LargeBatch:
		return LargeBatchDelay
	}
	return DefaultDelay
}

// Process creates and uploads the size chart of a single product.
func (p *Processor) Process(ctx context.Context, product sizechart.Product) (r Result) {
	r = Result{ProductID: product.ID, ProductTitle: product.Title}
	defer func() {
		if e := recover(); e != nil {
			r.Success, r.Uploaded = false, false
			r.Err = fmt.Errorf("processing error: %v", e)
		}
	}()
	if p.hasSizeChart(ctx, product) {
		r.Skipped, r.Err = true, ErrAlreadyHasSizeChart
		return r
	}
	chart, err := p.synth.Synthesize(product)
	if err != nil {
		if errors.Is(err, sizechart.ErrNoSizeChartData) || errors.Is(err, sizechart.ErrInsufficientMeasurements) {
			r.Skipped = true
		}
		r.Err = err
		return r
	}
	r.ChartType = chart.Type
	up := Upload{
		Attachment: base64.StdEncoding.EncodeToString(chart.PNG),
		AltText:    AltText(product.Title),
		Position:   p.conf.Position,
	}
	if err := p.upload(ctx, product.ID, up); err != nil {
		r.Err = err
		return r
	}
	r.Success, r.Uploaded = true, true
	return r
}

// hasSizeChart checks the product record first, then asks the platform.
// If the platform cannot be asked, the product is treated as having none.
func (p *Processor) hasSizeChart(ctx context.Context, product sizechart.Product) bool {
	if product.HasSizeChartImage() {
		return true
	}
	images, err := p.platform.ProductImages(ctx, product.ID)
	if err != nil {
		tracer().Errorf("cannot list images of %v: %v", product, err)
		return false
	}
	for _, img := range images {
		if img.IsSizeChart() {
			return true
		}
	}
	return false
}

func (p *Processor) upload(ctx context.Context, productID string, up Upload) error {
	var err error
	for attempt := 1; attempt <= p.conf.Attempts; attempt++ {
		if err = p.platform.UploadImage(ctx, productID, up); err == nil {
			return nil
		}
		tracer().Errorf("upload attempt %d/%d for %s: %v", attempt, p.conf.Attempts, productID, err)
		if attempt < p.conf.Attempts {
			if e := sleep(ctx, p.conf.RetryWait); e != nil {
				break
			}
		}
	}
	if errors.Is(err, ErrUpload) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUpload, err)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
