package render

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// normalizedStamp replaces PDF date stamps; it keeps the 14-digit width so
// cross-reference offsets stay valid.
const normalizedStamp = "20000101000000"

var (
	dateStampPattern  = regexp.MustCompile(`(/(?:CreationDate|ModDate)\s*\(D:)\d{14}`)
	documentIDPattern = regexp.MustCompile(`/ID\s*\[\s*<([0-9A-Fa-f]+)>\s*<([0-9A-Fa-f]+)>\s*\]`)
)

// ChromeEngine prints HTML to PDF with a headless Chrome through the DevTools protocol.
type ChromeEngine struct {
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
	Timeout  time.Duration
}

func (e *ChromeEngine) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.DisableGPU, chromedp.NoSandbox)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			out = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print: %w", err)
	}
	return NormalizePDFStamps(out), nil
}

// NormalizePDFStamps rewrites creation and modification dates and the document
// ID to fixed values of the same length.
func NormalizePDFStamps(data []byte) []byte {
	out := dateStampPattern.ReplaceAll(data, []byte("${1}"+normalizedStamp))
	return documentIDPattern.ReplaceAllFunc(out, func(m []byte) []byte {
		sub := documentIDPattern.FindSubmatchIndex(m)
		res := append([]byte(nil), m...)
		for _, pair := range [][2]int{{sub[2], sub[3]}, {sub[4], sub[5]}} {
			for i := pair[0]; i < pair[1]; i++ {
				res[i] = '0'
			}
		}
		return res
	})
}
