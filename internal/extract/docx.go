package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Extractor = (*DOCX)(nil)

// DOCX extracts text from Office Open XML word documents. A .docx file is
// a ZIP archive; the document body lives in word/document.xml.
type DOCX struct{}

// NewDOCX creates the DOCX extractor.
func NewDOCX() *DOCX {
	return &DOCX{}
}

// Extract returns the concatenated paragraph text of the document.
func (d *DOCX) Extract(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s as docx: %w", path, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document.xml in %s: %w", path, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read document.xml in %s: %w", path, err)
		}

		return parseDocumentXML(content), nil
	}

	// No document.xml: treat as an empty document rather than an error.
	return "", nil
}

// SupportedTypes returns the handled extensions.
func (d *DOCX) SupportedTypes() []string {
	return []string{".docx"}
}

// documentXML mirrors the parts of word/document.xml we care about.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML.
// Paragraphs become lines; runs within a paragraph concatenate.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}
	return strings.TrimSpace(result.String())
}
