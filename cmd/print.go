package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

var rawMarkdown = flag.Bool("raw", false, "Print reports as raw markdown, without terminal rendering")

// printMarkdown renders md on the standard output.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md, *rawMarkdown)
}

func fprintMarkdown(w io.Writer, md string, raw bool) {
	if raw {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// still readable
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
