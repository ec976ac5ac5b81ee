package batch

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sizechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePlatform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	fp := FilePlatform{Dir: filepath.Join(t.TempDir(), "charts")}
	ctx := context.Background()
	images, err := fp.ProductImages(ctx, "gid://shop/Product/42")
	require.NoError(t, err)
	assert.Empty(t, images)
	//
	up := Upload{
		Attachment: base64.StdEncoding.EncodeToString([]byte("chart")),
		AltText:    AltText("Tank"),
		Position:   4,
	}
	require.NoError(t, fp.UploadImage(ctx, "gid://shop/Product/42", up))
	images, err = fp.ProductImages(ctx, "gid://shop/Product/42")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "gid_shop_Product_42-1", images[0].ID)
	assert.Equal(t, "Size Chart - Tank", images[0].AltText)
	assert.True(t, images[0].IsSizeChart())
	data, err := os.ReadFile(images[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "chart", string(data))
	//
	images, err = fp.ProductImages(ctx, "gid://shop/Product/4")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestFilePlatformRejectsBadAttachment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	fp := FilePlatform{Dir: t.TempDir()}
	err := fp.UploadImage(context.Background(), "1", Upload{Attachment: "not base64!"})
	assert.ErrorIs(t, err, ErrUpload)
}

func TestFilePlatformSkipsSecondRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	fp := FilePlatform{Dir: t.TempDir()}
	products := []sizechart.Product{{ID: "7", Title: "Tank", DescriptionHTML: "x"}}
	p := NewProcessor(fakeSynth{}, fp, fastConf)
	results, err := p.Run(context.Background(), products)
	require.NoError(t, err)
	assert.True(t, results[0].Success)
	results, err = p.Run(context.Background(), products)
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)
	assert.ErrorIs(t, results[0].Err, ErrAlreadyHasSizeChart)
}

func TestFileKey(t *testing.T) {
	assert.Equal(t, "gid_shop_Product_42", fileKey("gid://shop/Product/42"))
	assert.Equal(t, "a-b_c", fileKey("a-b c"))
	assert.Equal(t, "product", fileKey("///"))
}

func TestReadProducts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.batch")
	defer teardown()
	//
	json := `[{"id": "1", "title": "Tank", "descriptionHtml": "S: bust 34in", "images": [{"url": "https://cdn/x.png", "altText": "front"}]}]`
	products, err := ReadProducts(strings.NewReader(json))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tank", products[0].Title)
	assert.Equal(t, "S: bust 34in", products[0].DescriptionHTML)
	assert.Equal(t, "front", products[0].Images[0].AltText)
	//
	yml := "- id: \"2\"\n  title: Tee\n  descriptionHtml: |\n    M: bust 36in\n"
	products, err = ReadProducts(strings.NewReader(yml))
	require.NoError(t, err)
	assert.Equal(t, "M: bust 36in\n", products[0].DescriptionHTML)
	//
	products, err = ReadProducts(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, products)
	_, err = ReadProducts(strings.NewReader("{not: [valid"))
	assert.Error(t, err)
}
