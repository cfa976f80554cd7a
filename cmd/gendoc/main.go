// Command gendoc renders the texture editing technical report as a PDF.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/assetkit/report"
)

func main() {
	var (
		output = flag.String("o", "texture-edit-technical.pdf", "output file")
		title  = flag.String("title", "", "override the report title")
	)
	flag.Parse()

	doc := report.DefaultDocument()
	if *title != "" {
		doc.Title = *title
	}

	if err := doc.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d sections)\n", *output, len(doc.Sections))
}
