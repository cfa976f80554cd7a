// Package shader converts compiled shader binaries into C++ headers that
// embed the bytecode as a byte array.
//
// The generated header declares two constants inside `namespace Shaders`: a
// size_t byte count and a uint8_t array holding the exact input bytes. Build
// pipelines run the conversion once per shader so the program compiles its
// bytecode in directly instead of loading .spv files at runtime.
//
// The transform is stateless and deterministic: the same input bytes and
// logical name always produce byte-identical header text, so generated files
// diff cleanly and downstream tooling can cache on content.
//
//	id, err := shader.DeriveIdentity("triangle")
//	hdr := shader.Render(bytecode, id, "triangle.spv")
//	err = shader.WriteFile("triangle_shader.h", hdr)
//
// or, as a single step from a file on disk:
//
//	n, err := shader.Embed("triangle.spv", "triangle_shader.h", "triangle")
package shader
