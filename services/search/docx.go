package search

import (
	"archive/zip"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const (
	docxMainPart          = "word/document.xml"
	wordprocessingMLSpace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	markupCompatSpace     = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

var ErrInvalidDocx = errors.New("not a valid docx document")

// readDocxText returns the text of every paragraph of the document body in
// document order, joined by single spaces.
func readDocxText(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocx, err)
	}
	defer archive.Close()

	var mainPart *zip.File
	for _, file := range archive.File {
		if file.Name == docxMainPart {
			mainPart = file
			break
		}
	}
	if mainPart == nil {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidDocx, docxMainPart)
	}

	reader, err := mainPart.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocx, err)
	}
	defer reader.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", ErrInvalidDocx, docxMainPart, err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("%w: empty %s", ErrInvalidDocx, docxMainPart)
	}

	var paragraphs []string
	collectParagraphs(root, &paragraphs)

	return strings.Join(paragraphs, " "), nil
}

// collectParagraphs appends the text of every w:p below element. Paragraphs
// nested in text boxes are collected on their own and left out of the
// enclosing paragraph. mc:Fallback repeats the content of mc:Choice and is
// skipped.
func collectParagraphs(element *etree.Element, paragraphs *[]string) {
	for _, child := range element.ChildElements() {
		if isCompatFallback(child) {
			continue
		}
		if isWordElement(child, "p") {
			var text strings.Builder
			writeParagraphText(child, &text)
			*paragraphs = append(*paragraphs, text.String())
		}
		collectParagraphs(child, paragraphs)
	}
}

func writeParagraphText(element *etree.Element, text *strings.Builder) {
	for _, child := range element.ChildElements() {
		switch {
		case isWordElement(child, "p"), isWordElement(child, "pPr"), isWordElement(child, "rPr"), isCompatFallback(child):
			continue
		case isWordElement(child, "t"):
			text.WriteString(child.Text())
		case isWordElement(child, "tab"):
			text.WriteByte('\t')
		case isWordElement(child, "br"), isWordElement(child, "cr"):
			text.WriteByte('\n')
		default:
			writeParagraphText(child, text)
		}
	}
}

func isWordElement(element *etree.Element, tag string) bool {
	if element.Tag != tag {
		return false
	}
	return element.Space == "w" || element.NamespaceURI() == wordprocessingMLSpace
}

func isCompatFallback(element *etree.Element) bool {
	if element.Tag != "Fallback" {
		return false
	}
	return element.Space == "mc" || element.NamespaceURI() == markupCompatSpace
}
