package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// ExtractDocument decodes a PDF or DOCX upload into a Document. The MIME
// type decides the decoder; anything else returns UnsupportedTypeError
// before any decoding is attempted.
func ExtractDocument(mimeType string, data []byte) (*Document, error) {
	var (
		raw string
		err error
	)
	switch mimeType {
	case types.MimePDF:
		raw, err = extractPDFText(data)
		if err != nil {
			return nil, &ExtractError{Format: "pdf", Cause: err}
		}
	case types.MimeDOCX:
		raw, err = extractDocxText(data)
		if err != nil {
			return nil, &ExtractError{Format: "docx", Cause: err}
		}
	default:
		return nil, &UnsupportedTypeError{MimeType: mimeType}
	}

	text := CleanText(raw)
	formatted, headings := AnnotateHeadings(text)
	return &Document{
		Text:          text,
		FormattedText: formatted,
		Metadata:      NewMetadata(text, headings),
	}, nil
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no word/document.xml entry")
	}

	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return xmlTagRe.ReplaceAllString(xml, ""), nil
}
