package texture

import (
	"image"
	"image/png"
	"os"

	"github.com/gogpu/assetkit"
)

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	assetkit.Logger().Debug("texture saved",
		"path", path,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return nil
}
