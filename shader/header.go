package shader

import (
	"bytes"
	"fmt"
)

// bytesPerRow is the number of byte literals per line in the generated array.
const bytesPerRow = 12

// Render produces the header text embedding data under the symbols in id.
// sourceName appears in the generated comment and is normally the base name
// of the originating file.
//
// The layout is a stable contract: rows of up to 12 lowercase 0x-prefixed
// literals, every row comma-terminated including the last, and an empty array
// body for empty input. Output depends only on the arguments, never on time
// or platform.
func Render(data []byte, id Identity, sourceName string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Auto-generated from %s\n", sourceName)
	b.WriteString("// DO NOT EDIT!\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n", id.Guard)
	fmt.Fprintf(&b, "#define %s\n\n", id.Guard)
	b.WriteString("#include <cstdint>\n")
	b.WriteString("#include <cstddef>\n\n")
	b.WriteString("namespace Shaders {\n\n")
	fmt.Fprintf(&b, "constexpr size_t %s_size = %d;\n\n", id.Name, len(data))
	fmt.Fprintf(&b, "constexpr uint8_t %s_data[] = {\n", id.Name)
	for i := 0; i < len(data); i += bytesPerRow {
		row := data[i:min(i+bytesPerRow, len(data))]
		b.WriteString("    ")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02x", v)
		}
		b.WriteString(",\n")
	}
	b.WriteString("};\n\n")
	b.WriteString("} // namespace Shaders\n\n")
	fmt.Fprintf(&b, "#endif // %s\n", id.Guard)
	return b.Bytes()
}
