// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/idg-content-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLoadedContent outputs how many records were read per collection and how many of
// them have a variant in each language.
func (p *Printer) PrintLoadedContent(content *types.TranslatedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %6s %6s %6s\n", "Collection", "Files", "en", "sv"))
	writeRow := func(name string, total int, counts map[types.Language]int) {
		sb.WriteString(fmt.Sprintf("%-12s %6d %6d %6d\n", name, total, counts[types.English], counts[types.Swedish]))
	}
	writeRow("tools", len(content.Tools), countLanguages(content.Tools))
	writeRow("skills", len(content.Skills), countLanguages(content.Skills))
	writeRow("categories", len(content.Categories), countLanguages(content.Categories))
	writeRow("tags", len(content.Tags), countLanguages(content.Tags))
	if content.Stories != nil {
		writeRow("stories", len(content.Stories), countLanguages(content.Stories))
	}

	if len(content.Singletons) > 0 {
		names := make([]string, 0, len(content.Singletons))
		for name := range content.Singletons {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString(fmt.Sprintf("\nSingletons: %s\n", strings.Join(names, ", ")))
	}

	p.printBox("LOADED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBundle outputs a summary of the bundle for every language in languages, followed
// by the first tools with their links.
func (p *Printer) PrintBundle(bundle types.Bundle, languages []types.Language) {
	if len(bundle) == 0 {
		return
	}

	for _, lang := range languages {
		c := bundle[lang]
		if c == nil {
			continue
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Tools:      %d\n", len(c.Tools)))
		sb.WriteString(fmt.Sprintf("Skills:     %d\n", len(c.Skills)))
		sb.WriteString(fmt.Sprintf("Categories: %d\n", len(c.Categories)))
		sb.WriteString(fmt.Sprintf("Tags:       %d\n", len(c.Tags)))
		if c.Stories != nil {
			sb.WriteString(fmt.Sprintf("Stories:    %d\n", len(c.Stories)))
		}

		if len(c.Tools) > 0 {
			sb.WriteString("\n")
			count := min(len(c.Tools), maxItemsToShow)
			for i := 0; i < count; i++ {
				tool := c.Tools[i]
				sb.WriteString(fmt.Sprintf("• %s\n", tool.Link))
				if len(tool.Relevancy) > 0 {
					top := tool.Relevancy[0]
					sb.WriteString(fmt.Sprintf("  top skill: %s (%.2f)\n", top.Skill, top.Score))
				}
			}
			if len(c.Tools) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more tools\n", len(c.Tools)-maxItemsToShow))
			}
		}

		p.printBox(fmt.Sprintf("BUNDLE [%s]", lang), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintNoIssues outputs a confirmation box for a content check without errors.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNoIssues() {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ CONTENT IS VALID")
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

func countLanguages[T any](items []types.Translated[T]) map[types.Language]int {
	counts := make(map[types.Language]int)
	for _, item := range items {
		for _, lang := range item.Languages() {
			counts[lang]++
		}
	}
	return counts
}
