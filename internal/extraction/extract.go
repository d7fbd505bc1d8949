// Package extraction turns uploaded resume files into plain text.
//
// The extractors are the only I/O-shaped stage of the pipeline and the only
// one that can genuinely fail; everything downstream accepts whatever string
// comes out. TextOrPlaceholder encodes the product decision that a corrupt
// upload still produces a (mostly empty) candidate record rather than an
// error response.
package extraction

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

// Supported media types.
const (
	TypePDF   = "application/pdf"
	TypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeHTML  = "text/html"
	TypePlain = "text/plain"
)

// TypeForFile infers a supported media type from a file name's extension.
// Returns "" for extensions the extractor has no handler for.
func TypeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDocx
	case ".html", ".htm":
		return TypeHTML
	case ".txt", ".text", ".md":
		return TypePlain
	default:
		return ""
	}
}

// Text extracts plain text from a document of the declared media type.
func Text(data []byte, mediaType string) (string, error) {
	// Strip parameters such as "; charset=utf-8"
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	switch mediaType {
	case TypePlain:
		return string(data), nil
	case TypePDF:
		return pdfText(data)
	case TypeDocx:
		return docxText(data)
	case TypeHTML:
		return htmlText(data)
	default:
		return "", &UnsupportedTypeError{MediaType: mediaType}
	}
}

// TextOrPlaceholder extracts text, substituting a placeholder string on any
// failure so the parse pipeline always proceeds. The placeholder carries the
// file name for diagnostics; it contains no section headers, so parsing it
// yields an all-empty result.
func TextOrPlaceholder(data []byte, mediaType, name string, logger *zap.Logger) string {
	text, err := Text(data, mediaType)
	if err != nil {
		if logger != nil {
			logger.Warn("text extraction failed, using placeholder",
				zap.String("file", name),
				zap.String("mediaType", mediaType),
				zap.Error(err))
		}
		return "[Text Extraction Failed] File: " + name + ". Please check file format."
	}
	return text
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: TypePDF, Message: "failed to open pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document
			continue
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", &ExtractionError{MediaType: TypePDF, Message: "no extractable text"}
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: TypeDocx, Message: "failed to open docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", &ExtractionError{MediaType: TypeDocx, Message: "no extractable text"}
	}
	return content, nil
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{MediaType: TypeHTML, Message: "failed to parse html", Cause: err}
	}

	doc.Find("script, style").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers; only leaf-ish nodes contribute lines
		if s.Children().Length() > 0 && !s.Is("li, p, td, h1, h2, h3, h4, h5, h6") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		text := strings.TrimSpace(doc.Text())
		if text == "" {
			return "", &ExtractionError{MediaType: TypeHTML, Message: "no extractable text"}
		}
		return text, nil
	}
	return strings.Join(lines, "\n"), nil
}
