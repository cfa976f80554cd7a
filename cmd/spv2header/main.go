// Command spv2header converts a compiled SPIR-V binary into a C++ header
// embedding the bytecode as a byte array, so the build links shaders into
// the program instead of loading them from disk.
//
// Usage:
//
//	spv2header [options] <input.spv> <output.h> <variable_name>
//
// Examples:
//
//	spv2header triangle.spv triangle_shader.h triangle
//	spv2header -wgsl triangle.wgsl triangle_shader.h triangle
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/naga"

	"github.com/gogpu/assetkit"
	"github.com/gogpu/assetkit/shader"
)

var (
	wgsl     = flag.Bool("wgsl", false, "treat input as WGSL source and compile it to SPIR-V first")
	debug    = flag.Bool("debug", false, "include debug info when compiling WGSL")
	validate = flag.Bool("validate", true, "validate IR when compiling WGSL")
	verbose  = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		assetkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	args := flag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}
	input, output, name := args[0], args[1], args[2]

	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s not found\n", input)
		os.Exit(1)
	}

	var n int
	var err error
	if *wgsl {
		n, err = compileAndEmbed(input, output, name)
	} else {
		n, err = shader.Embed(input, output, name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d bytes)\n", output, n)
}

// compileAndEmbed compiles WGSL source at input to SPIR-V and embeds the
// resulting bytecode, so a build pipeline can go from shader source to
// embedded header in one step.
func compileAndEmbed(input, output, name string) (int, error) {
	source, err := os.ReadFile(input)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", input, err)
	}
	opts := naga.DefaultOptions()
	opts.Debug = *debug
	opts.Validate = *validate
	spirvBytes, err := naga.CompileWithOptions(string(source), opts)
	if err != nil {
		return 0, fmt.Errorf("compiling %s: %w", input, err)
	}
	if err := shader.EmbedBytes(spirvBytes, output, name, filepath.Base(input)); err != nil {
		return 0, err
	}
	return len(spirvBytes), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spv2header [options] <input.spv> <output.h> <variable_name>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spv2header triangle.spv triangle_shader.h triangle\n")
	fmt.Fprintf(os.Stderr, "  spv2header -wgsl triangle.wgsl triangle_shader.h triangle\n")
}
