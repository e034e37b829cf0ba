package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// DocumentExtractor converts an uploaded binary into plain text. Supported
// types are pdf, docx and txt, decided by the original filename's extension.
type DocumentExtractor interface {
	ExtractText(filePath, originalName string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// ExtractText implements DocumentExtractor. URLs found in the text are
// deduplicated and appended as a trailing links section, so profile and
// portfolio links survive into the match prompt.
func (e *documentExtractor) ExtractText(filePath, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	var text string
	var err error

	switch ext {
	case ".pdf":
		text, err = extractPDFText(filePath)
	case ".docx":
		text, err = extractDocxText(filePath)
	case ".txt":
		text, err = extractPlainText(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in %s", ErrExtractionFailure, originalName)
	}

	return appendLinkSection(text), nil
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func extractPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func appendLinkSection(text string) string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return text
	}

	seen := make(map[string]struct{}, len(matches))
	var urls []string
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;)")
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}

	var section strings.Builder
	section.WriteString(text)
	section.WriteString("\n--- Links found in document ---\n")
	section.WriteString(strings.Join(urls, "\n"))
	section.WriteString("\n")

	return section.String()
}

// CleanText normalizes extracted text: trims every line and drops empty ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
