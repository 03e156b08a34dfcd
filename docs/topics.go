// Package docs embeds the bpl user manual as markdown topics.
//
// Each *.md file is one topic, addressed by its base name. The readme topic
// is the table of contents and the default shown by 'bpl topic'.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// GetTopic returns one topic's markdown. "*" expands to every topic but the
// readme.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := manual.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the markdown of the given topics, stars included.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, t := range topics {
		content, err := GetTopic(t)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the available topic names, readme excluded, sorted.
func GetAllTopics() ([]string, error) {
	pages, err := fs.Glob(manual, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, p := range pages {
		name := strings.TrimSuffix(p, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
