package main

import (
	"bytes"
	"fmt"
	"strings"
)

const generatedHeader = "<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->"

// MarkdownWriter accumulates a markdown document. Block-level methods
// leave exactly one blank line after themselves.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter returns an empty writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes a YAML frontmatter block with a title and description.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	w.buf.WriteString("---\n")
	fmt.Fprintf(&w.buf, "title: %s\n", yamlScalar(title))
	if description != "" {
		fmt.Fprintf(&w.buf, "description: %s\n", yamlScalar(description))
	}
	w.buf.WriteString("---\n\n")
}

// GeneratedMarker marks the file as generated.
func (w *MarkdownWriter) GeneratedMarker() {
	w.buf.WriteString(generatedHeader)
	w.buf.WriteString("\n\n")
}

// Header writes an ATX header of the given level.
func (w *MarkdownWriter) Header(level int, text string) {
	level = max(1, min(level, 6))
	fmt.Fprintf(&w.buf, "%s %s\n\n", strings.Repeat("#", level), text)
}

// Paragraph writes a block of text.
func (w *MarkdownWriter) Paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	w.buf.WriteString(text)
	w.buf.WriteString("\n\n")
}

// CodeBlock writes a fenced code block.
func (w *MarkdownWriter) CodeBlock(lang, code string) {
	fmt.Fprintf(&w.buf, "```%s\n%s\n```\n\n", lang, strings.TrimRight(code, "\n"))
}

// Table writes a pipe table. Cells are escaped; rows shorter than the
// header are padded.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	w.tableRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	w.tableRow(sep)
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = escapeCell(row[i])
			}
		}
		w.tableRow(cells)
	}
	w.buf.WriteString("\n")
}

func (w *MarkdownWriter) tableRow(cells []string) {
	w.buf.WriteString("| ")
	w.buf.WriteString(strings.Join(cells, " | "))
	w.buf.WriteString(" |\n")
}

// BulletList writes an unordered list.
func (w *MarkdownWriter) BulletList(items []string) {
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		fmt.Fprintf(&w.buf, "- %s\n", item)
	}
	w.buf.WriteString("\n")
}

// Line writes text followed by a single newline.
func (w *MarkdownWriter) Line(text string) {
	w.buf.WriteString(text)
	w.buf.WriteString("\n")
}

// Newline writes an empty line.
func (w *MarkdownWriter) Newline() {
	w.buf.WriteString("\n")
}

// Bytes returns the document with trailing blank lines collapsed.
func (w *MarkdownWriter) Bytes() []byte {
	out := bytes.TrimRight(w.buf.Bytes(), "\n")
	return append(out, '\n')
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

// Bold wraps s in double asterisks.
func Bold(s string) string {
	return "**" + s + "**"
}

// cleanDescription flattens s to a single line suitable for a table cell.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func yamlScalar(s string) string {
	if strings.ContainsAny(s, ":#'\"{}[]") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
