// Command gentexture generates a procedural UV test texture: a colored
// checkerboard with grid lines, a border, and optional cell labels.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/assetkit/texture"
)

func main() {
	var (
		width  = flag.Int("width", 512, "texture width in pixels")
		height = flag.Int("height", 512, "texture height in pixels")
		cells  = flag.Int("cells", 4, "checker cells per axis")
		labels = flag.Bool("labels", false, "draw cell coordinates")
		output = flag.String("o", "cube_texture.png", "output file")
	)
	flag.Parse()

	opts := texture.DefaultOptions()
	opts.Width = *width
	opts.Height = *height
	opts.Cells = *cells
	opts.Labels = *labels

	img := texture.Generate(opts)
	if err := texture.SavePNG(*output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Texture generated: %s\n", *output)
}
