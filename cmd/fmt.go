package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal; on any rendering error
// the raw markdown is printed instead, which is what piped consumers (the
// delivery agent) want anyway.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(content)
}
