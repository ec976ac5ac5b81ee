package batch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/sizechart"
	"gopkg.in/yaml.v3"
)

// Platform is a commerce platform holding products and their images.
type Platform interface {
	// ProductImages lists the images of a product.
	ProductImages(ctx context.Context, productID string) ([]sizechart.Image, error)
	// UploadImage attaches a new image to a product.
	UploadImage(ctx context.Context, productID string, up Upload) error
}

// Upload is an image to attach to a product.
type Upload struct {
	Attachment string `yaml:"-"`        // base64 encoded image data
	AltText    string `yaml:"altText"`  // e.g. "Size Chart - Ribbed Tank"
	Position   int    `yaml:"position"` // position among the product images, 0 for last
}

// AltText returns the alt text of the size chart of a product.
func AltText(productTitle string) string {
	return "Size Chart - " + productTitle
}

// ReadProducts reads a list of products in YAML or JSON format.
func ReadProducts(r io.Reader) ([]sizechart.Product, error) {
	var products []sizechart.Product
	if err := yaml.NewDecoder(r).Decode(&products); err != nil && err != io.EOF {
		return nil, fmt.Errorf("batch: cannot read products: %w", err)
	}
	return products, nil
}

// --- File platform ---------------------------------------------------------

// FilePlatform stores uploaded images as PNG files in directory Dir. For every
// image there is a YAML sidecar file holding its alt text and position.
// Images of a product are the ones of its sidecar files.
type FilePlatform struct {
	Dir string
}

type sidecar struct {
	ProductID string `yaml:"productId"`
	Upload    `yaml:",inline"`
	Image     string `yaml:"image"`
}

var unsafeRx = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// fileKey derives a file name prefix from a product ID,
// e.g. "gid://shop/Product/42" → "gid_shop_Product_42".
func fileKey(productID string) string {
	key := strings.Trim(unsafeRx.ReplaceAllString(productID, "_"), "_")
	if key == "" {
		key = "product"
	}
	return key
}

// ProductImages is part of interface Platform.
func (fp FilePlatform) ProductImages(ctx context.Context, productID string) ([]sizechart.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths, err := fp.sidecars(productID)
	if err != nil {
		return nil, err
	}
	images := make([]sizechart.Image, 0, len(paths))
	for _, path := range paths {
		sc, err := readSidecar(path)
		if err != nil {
			return nil, err
		}
		if sc.ProductID != productID {
			continue // key collision
		}
		images = append(images, sizechart.Image{
			ID:      strings.TrimSuffix(filepath.Base(path), ".yaml"),
			URL:     filepath.Join(fp.Dir, sc.Image),
			AltText: sc.AltText,
		})
	}
	return images, nil
}

// UploadImage is part of interface Platform. It decodes the attachment and
// writes it to a new file "<product>-<n>.png".
func (fp FilePlatform) UploadImage(ctx context.Context, productID string, up Upload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := base64.StdEncoding.DecodeString(up.Attachment)
	if err != nil {
		return fmt.Errorf("%w: attachment: %v", ErrUpload, err)
	}
	if err := os.MkdirAll(fp.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	existing, err := fp.sidecars(productID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	name := fmt.Sprintf("%s-%d", fileKey(productID), len(existing)+1)
	if err := os.WriteFile(filepath.Join(fp.Dir, name+".png"), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	sc := sidecar{ProductID: productID, Upload: up, Image: name + ".png"}
	out, err := yaml.Marshal(&sc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := os.WriteFile(filepath.Join(fp.Dir, name+".yaml"), out, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	tracer().Debugf("stored %s for product %s", name, productID)
	return nil
}

func (fp FilePlatform) sidecars(productID string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(fp.Dir, fileKey(productID)+"-*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func readSidecar(path string) (sidecar, error) {
	var sc sidecar
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("batch: %s: %w", path, err)
	}
	return sc, nil
}
