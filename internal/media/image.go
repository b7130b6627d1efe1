// Package media fetches figurine artwork and shapes it into the small PNG
// thumbnails stored next to each record.
package media

import (
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
)

// Fetcher downloads artwork and writes height-bounded PNG thumbnails.
type Fetcher struct {
	Height int
	Client *http.Client
}

// NewFetcher creates a Fetcher producing thumbnails of the given height.
func NewFetcher(height int) *Fetcher {
	return &Fetcher{
		Height: height,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads and decodes an image from a URL.
func (f *Fetcher) Fetch(url string) (image.Image, error) {
	resp, err := f.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FitHeight scales an image to exactly the fetcher's height, keeping the
// aspect ratio. Smaller images are scaled up so every thumbnail renders at
// the same size.
func (f *Fetcher) FitHeight(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dy() == f.Height {
		return img
	}
	newWidth := int(float64(bounds.Dx()) * float64(f.Height) / float64(bounds.Dy()))
	if newWidth < 1 {
		newWidth = 1
	}
	return imaging.Resize(img, newWidth, f.Height, imaging.Lanczos)
}

// SaveThumbnail downloads the artwork at url, scales it down and writes it
// as a PNG at path.
func (f *Fetcher) SaveThumbnail(url, path string) error {
	img, err := f.Fetch(url)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail: %w", err)
	}

	err = png.Encode(out, f.FitHeight(img))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}
