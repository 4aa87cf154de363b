package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every topic must parse as markdown and open with a level-1 heading, since
// topics are concatenated and rendered together.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}

	md := goldmark.New()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) failed: %v", topic, err)
			}
			source := []byte(content)
			root := md.Parser().Parse(text.NewReader(source))

			first := root.FirstChild()
			if first == nil {
				t.Fatalf("topic %q is empty", topic)
			}
			h, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading, got %s", topic, first.Kind())
			}
			if h.Level != 1 {
				t.Errorf("topic %q opens with a level-%d heading, want level 1", topic, h.Level)
			}
		})
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() with an unknown topic should fail")
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	single, err := GetTopic("alerts")
	if err != nil {
		t.Fatalf("GetTopic(alerts) failed: %v", err)
	}
	if len(all) <= len(single) {
		t.Error("GetTopic(*) should concatenate all topics")
	}
}
