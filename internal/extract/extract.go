// Package extract turns PDF documents into plain text for scoring.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"cvos-backend/internal/shared/storage/object"
)

// ErrExtraction marks documents the PDF reader could not parse.
var ErrExtraction = errors.New("pdf extraction failed")

// Document is the text of every page of a PDF plus its page count.
type Document struct {
	Text  string
	Pages int
}

// FromObject reads a staged upload and extracts its text.
func FromObject(ctx context.Context, store object.ObjectStore, key string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		return Document{}, fmt.Errorf("extract text key=%s: %w", key, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return Document{}, fmt.Errorf("extract text key=%s: read: %w", key, err)
	}

	doc, err := FromBytes(ctx, raw)
	if err != nil {
		return Document{}, fmt.Errorf("extract text key=%s: %w", key, err)
	}
	return doc, nil
}

// FromFile extracts text from the PDF at path. The file is closed before returning.
func FromFile(ctx context.Context, path string) (doc Document, err error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	defer recoverExtraction(&err)
	f, reader, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: open %s: %v", ErrExtraction, path, err)
	}
	defer f.Close()

	return readPages(ctx, reader)
}

// FromBytes extracts text from an in-memory PDF.
func FromBytes(ctx context.Context, data []byte) (doc Document, err error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: empty document", ErrExtraction)
	}

	defer recoverExtraction(&err)
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return readPages(ctx, reader)
}

func readPages(ctx context.Context, reader *pdf.Reader) (Document, error) {
	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil {
			return Document{}, fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		pages = append(pages, text)
	}

	if numPages < 1 {
		numPages = 1
	}
	return Document{
		Text:  norm.NFC.String(strings.Join(pages, "\n")),
		Pages: numPages,
	}, nil
}

// pageText rebuilds the page line by line; rows come back top to bottom.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return page.GetPlainText(nil)
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for _, t := range row.Content {
			b.WriteString(t.S)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n"), nil
}

// recoverExtraction converts panics from the PDF reader on malformed input into ErrExtraction.
func recoverExtraction(err *error) {
	if rec := recover(); rec != nil {
		*err = fmt.Errorf("%w: malformed pdf: %v", ErrExtraction, rec)
	}
}
