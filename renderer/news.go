package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// NewsMarkdown renders the scored headline list. Verbose adds relevance
// scores and links.
func NewsMarkdown(items []finbrief.NewsItem, verbose bool) string {
	if len(items) == 0 {
		return "No news items found.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Financial News")

	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item.Title)
		if verbose {
			line += fmt.Sprintf(" [score:%d]", item.Score)
		}
		if item.Stale {
			line += " (cached)"
		}
		doc.PlainText(line)
		doc.PlainText(fmt.Sprintf("   %s | %s", item.Source, item.Category))
		if verbose && item.Link != "" {
			doc.PlainText("   " + item.Link)
		}
	}

	return doc.String()
}
