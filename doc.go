// Package assetkit provides build-time asset and documentation tooling for
// GPU applications.
//
// # Overview
//
// assetkit bundles three small, independent tools that run as part of a build
// pipeline rather than at application runtime:
//
//   - shader: converts compiled shader bytecode (SPIR-V) into C++ headers that
//     embed the binary as a constexpr byte array, so shaders compile directly
//     into the program instead of being loaded from disk.
//   - texture: generates procedural UV test textures (checkerboard with grid
//     lines and optional cell labels) for validating texture mapping.
//   - report: renders technical documentation of the surrounding renderer as
//     a PDF.
//
// Each tool has a matching binary under cmd/ (spv2header, gentexture, gendoc).
// The tools share no state and have no data dependencies on one another; a
// build system invokes each one separately, and every invocation is a pure
// function of its inputs.
//
// # Quick Start
//
//	import "github.com/gogpu/assetkit/shader"
//
//	// Embed compiled bytecode as a C++ header:
//	n, err := shader.Embed("triangle.spv", "triangle_shader.h", "triangle")
//
// # Logging
//
// By default assetkit produces no log output. Call [SetLogger] to enable
// diagnostics from all sub-packages.
package assetkit

// Version information
const (
	// Version is the current version of the toolkit
	Version = "0.1.0"
)
