package batch

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sizechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePlatform struct {
	images   map[string][]sizechart.Image
	uploads  []Upload
	calls    int
	failures int // number of uploads to fail
	listErr  error
}

func (fp *fakePlatform) ProductImages(ctx context.Context, productID string) ([]sizechart.Image, error) {
	if fp.listErr != nil {
		return nil, fp.listErr
	}
	return fp.images[productID], nil
}

func (fp *fakePlatform) UploadImage(ctx context.Context, productID string, up Upload) error {
	fp.calls++
	if fp.calls <= fp.failures {
		return errors.New("rate limited")
	}
	fp.uploads = append(fp.uploads, up)
	return nil
}

type fakeSynth struct{}

func (fakeSynth) Synthesize(p sizechart.Product) (*sizechart.Chart, error) {
	if p.DescriptionHTML == "" {
		return nil, sizechart.ErrNoSizeChartData
	}
	return &sizechart.Chart{PNG: []byte("png"), Type: sizechart.FromText}, nil
}

var fastConf = Config{Delay: time.Millisecond, RetryWait: time.Millisecond}

func TestRunWithSynthesizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	synth, err := sizechart.New(sizechart.Options{})
	require.NoError(t, err)
	products := []sizechart.Product{
		{ID: "1", Title: "Tank", DescriptionHTML: "S: bust 34in, waist 28in\nM: bust 36in, waist 30in"},
		{ID: "2", Title: "Tee", DescriptionHTML: "S: bust 34in",
			Images: []sizechart.Image{{AltText: "Size Chart - Tee"}}},
		{ID: "3", Title: "Dress", DescriptionHTML: "A lovely dress."},
		{ID: "4", Title: "Scarf", DescriptionHTML: "One Size: length 30in"},
	}
	var progress []int
	conf := fastConf
	conf.Progress = func(done, total int) {
		assert.Equal(t, 4, total)
		progress = append(progress, done)
	}
	platform := &fakePlatform{}
	results, err := NewProcessor(synth, platform, conf).Run(context.Background(), products)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, progress)
	//
	assert.True(t, results[0].Success)
	assert.True(t, results[0].Uploaded)
	assert.Equal(t, sizechart.FromText, results[0].ChartType)
	assert.ErrorIs(t, results[1].Err, ErrAlreadyHasSizeChart)
	assert.ErrorIs(t, results[2].Err, sizechart.ErrNoSizeChartData)
	assert.ErrorIs(t, results[3].Err, sizechart.ErrInsufficientMeasurements)
	for _, r := range results[1:] {
		assert.True(t, r.Skipped, r.String())
	}
	assert.Equal(t, Summary{Total: 4, Successful: 1, Skipped: 3}, Summarize(results))
	//
	require.Len(t, platform.uploads, 1)
	up := platform.uploads[0]
	assert.Equal(t, "Size Chart - Tank", up.AltText)
	data, err := base64.StdEncoding.DecodeString(up.Attachment)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))
}

func TestDuplicateFromPlatform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	platform := &fakePlatform{images: map[string][]sizechart.Image{
		"1": {{AltText: "front"}, {AltText: "size CHART - Tank"}},
	}}
	p := NewProcessor(fakeSynth{}, platform, fastConf)
	r := p.Process(context.Background(), sizechart.Product{ID: "1", Title: "Tank", DescriptionHTML: "x"})
	assert.True(t, r.Skipped)
	assert.ErrorIs(t, r.Err, ErrAlreadyHasSizeChart)
	assert.Zero(t, platform.calls)
	// a platform failure does not prevent processing
	platform.listErr = errors.New("unavailable")
	r = p.Process(context.Background(), sizechart.Product{ID: "1", Title: "Tank", DescriptionHTML: "x"})
	assert.True(t, r.Success)
}

func TestUploadRetries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	product := sizechart.Product{ID: "1", Title: "Tank", DescriptionHTML: "x"}
	platform := &fakePlatform{failures: 2}
	r := NewProcessor(fakeSynth{}, platform, fastConf).Process(context.Background(), product)
	assert.True(t, r.Success)
	assert.Equal(t, 3, platform.calls)
	//
	platform = &fakePlatform{failures: 10}
	r = NewProcessor(fakeSynth{}, platform, fastConf).Process(context.Background(), product)
	assert.False(t, r.Success)
	assert.False(t, r.Skipped)
	assert.ErrorIs(t, r.Err, ErrUpload)
	assert.Equal(t, UploadAttempts, platform.calls)
	assert.Equal(t, Summary{Total: 1, Failed: 1}, Summarize([]Result{r}))
}

func TestRunCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conf := Config{
		Delay: time.Hour,
		Progress: func(done, total int) {
			if done == 1 {
				cancel()
			}
		},
	}
	products := []sizechart.Product{
		{ID: "1", Title: "Tank", DescriptionHTML: "x"},
		{ID: "2", Title: "Tee", DescriptionHTML: "x"},
	}
	start := time.Now()
	results, err := NewProcessor(fakeSynth{}, &fakePlatform{}, conf).Run(ctx, products)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestDelay(t *testing.T) {
	p := NewProcessor(fakeSynth{}, &fakePlatform{}, Config{})
	assert.Equal(t, DefaultDelay, p.delay(10))
	assert.Equal(t, DefaultDelay, p.delay(LargeBatch))
	assert.Equal(t, LargeBatchDelay, p.delay(LargeBatch+1))
	p = NewProcessor(fakeSynth{}, &fakePlatform{}, Config{Delay: time.Second})
	assert.Equal(t, time.Second, p.delay(5000))
}
