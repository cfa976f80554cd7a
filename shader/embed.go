package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/assetkit"
)

// Embed reads the binary at inputPath and writes a header embedding it under
// name to outputPath. It returns the number of bytes embedded. The input is
// read in full before anything is written; on any error the destination path
// is left untouched.
func Embed(inputPath, outputPath, name string) (int, error) {
	id, err := DeriveIdentity(name)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if err := embed(data, outputPath, id, filepath.Base(inputPath)); err != nil {
		return 0, err
	}
	return len(data), nil
}

// EmbedBytes writes a header embedding data under name to outputPath.
// sourceName appears in the generated comment; callers that compiled the
// bytecode in-process pass the name of the original source file.
func EmbedBytes(data []byte, outputPath, name, sourceName string) error {
	id, err := DeriveIdentity(name)
	if err != nil {
		return err
	}
	return embed(data, outputPath, id, sourceName)
}

func embed(data []byte, outputPath string, id Identity, sourceName string) error {
	hdr := Render(data, id, sourceName)
	if err := WriteFile(outputPath, hdr); err != nil {
		return err
	}
	assetkit.Logger().Debug("embedded shader",
		"output", outputPath, "symbol", id.Name, "guard", id.Guard, "bytes", len(data))
	return nil
}
