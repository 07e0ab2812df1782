// Package documents extracts text and key points from uploaded reference
// documents and measures how well a transcript covers them.
package documents

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

// ErrUnsupportedFormat is returned for file types the extractor cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrNoText is returned when a document yields no extractable text.
var ErrNoText = errors.New("no text could be extracted from document")

// SupportedExtensions lists the accepted upload formats.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// ExtractText pulls the plain text out of a document by file extension.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", ErrNoText
		}
		return text, nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func extractPDF(data []byte) (string, error) {
	pdfReader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("reading PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("getting PDF page count: %w", err)
	}
	if numPages == 0 {
		return "", ErrNoText
	}

	var textBuilder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			log.Printf("[DEBUG] Skipping unreadable PDF page %d: %v", i, err)
			continue
		}

		ex, err := extractor.New(page)
		if err != nil {
			log.Printf("[DEBUG] Skipping PDF page %d, no extractor: %v", i, err)
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			log.Printf("[DEBUG] Skipping PDF page %d, extraction failed: %v", i, err)
			continue
		}

		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe        = regexp.MustCompile(`<[^>]+>`)
)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// Paragraph closes become newlines before the markup is stripped, so
	// line structure survives for key-point extraction.
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	text := strings.TrimSpace(content)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
