package sizechart

import (
	"strings"

	"github.com/npillmayer/sizechart/chart"
)

// SizeChartAltText marks product images which are size charts. The
// comparison is case-insensitive.
const SizeChartAltText = "size chart"

// Product is a product record of a commerce platform, reduced to what size
// chart synthesis needs.
type Product struct {
	ID              string  `json:"id" yaml:"id"`
	Title           string  `json:"title" yaml:"title"`
	Handle          string  `json:"handle,omitempty" yaml:"handle,omitempty"`
	DescriptionHTML string  `json:"descriptionHtml" yaml:"descriptionHtml"`
	Images          []Image `json:"images,omitempty" yaml:"images,omitempty"`
}

// Image is a product image.
type Image struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	AltText string `json:"altText,omitempty" yaml:"altText,omitempty"`
}

// IsSizeChart is true if the image's alt text marks it as a size chart.
func (img Image) IsSizeChart() bool {
	return strings.Contains(strings.ToLower(img.AltText), SizeChartAltText)
}

// HasSizeChartImage is true if one of the product's images is a size chart.
func (p Product) HasSizeChartImage() bool {
	for _, img := range p.Images {
		if img.IsSizeChart() {
			return true
		}
	}
	return false
}

// ChartProduct is the part of p shown on a chart.
func (p Product) ChartProduct() chart.Product {
	return chart.Product{Title: p.Title, DescriptionHTML: p.DescriptionHTML}
}

func (p Product) String() string {
	if p.ID == "" {
		return p.Title
	}
	return p.Title + " (" + p.ID + ")"
}
