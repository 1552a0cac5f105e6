package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pdf/fpdf"
)

// documentDate is stamped into every builtin PDF so identical input yields identical bytes.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type rgb struct{ r, g, b int }

var (
	textColor  = rgb{17, 24, 39}
	mutedColor = rgb{75, 85, 99}
)

// BuiltinEngine lays the HTML out with fpdf core fonts. It reads the flow of
// h1, h2, h3, p and li elements and ignores CSS; the body's data-font and
// data-accent attributes select the typeface and heading color.
type BuiltinEngine struct{}

func (BuiltinEngine) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := doc.Find("body")
	font := "Helvetica"
	if f, ok := body.Attr("data-font"); ok && (f == "Times" || f == "Courier") {
		font = f
	}
	accent := textColor
	if a, ok := body.Attr("data-accent"); ok {
		if c, ok := parseHexColor(a); ok {
			accent = c
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(18, 16, 18)
	pdf.SetAutoPageBreak(true, 16)
	pdf.SetCreator("cvOS", false)
	if title := collapse(doc.Find("title").Text()); title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), font: font, accent: accent}
	body.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		text := collapse(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			w.name(text)
		case "h2":
			w.heading(text)
		case "h3":
			w.block(text, "B", 10.5, textColor, 5.5)
		case "li":
			w.bullet(text)
		default:
			switch {
			case s.HasClass("headline"):
				w.block(text, "I", 12, textColor, 6)
			case s.HasClass("contact"):
				w.block(text, "", 9, mutedColor, 5)
				pdf.Ln(2)
			case s.HasClass("meta"):
				w.block(text, "I", 9, mutedColor, 5)
			default:
				w.block(text, "", 10, textColor, 5)
				pdf.Ln(1)
			}
		}
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	font   string
	accent rgb
}

func (w *pdfWriter) block(text, style string, size float64, color rgb, lineHeight float64) {
	w.pdf.SetFont(w.font, style, size)
	w.pdf.SetTextColor(color.r, color.g, color.b)
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", "L", false)
}

func (w *pdfWriter) name(text string) {
	w.block(text, "B", 20, w.accent, 9)
	w.pdf.Ln(1)
}

func (w *pdfWriter) heading(text string) {
	w.pdf.Ln(3)
	w.block(strings.ToUpper(text), "B", 12, w.accent, 7)
	left, _, right, _ := w.pdf.GetMargins()
	width, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY()
	w.pdf.SetDrawColor(w.accent.r, w.accent.g, w.accent.b)
	w.pdf.SetLineWidth(0.3)
	w.pdf.Line(left, y, width-right, y)
	w.pdf.Ln(2)
}

func (w *pdfWriter) bullet(text string) {
	left, _, _, _ := w.pdf.GetMargins()
	w.pdf.SetFont(w.font, "", 10)
	w.pdf.SetTextColor(textColor.r, textColor.g, textColor.b)
	w.pdf.SetX(left + 3)
	w.pdf.CellFormat(4, 5, w.tr("•"), "", 0, "L", false, 0, "")
	w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseHexColor(s string) (rgb, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)}, true
}
