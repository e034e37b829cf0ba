package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const documentFrame = `<html>
<head>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; margin: 40px; }
  h1, h2 { color: #333; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
  ul { margin: 4px 0; }
</style>
</head>
<body>
%s
</body>
</html>`

// PDFRenderService turns generated resume content into a PDF byte stream
// using a headless browser.
type PDFRenderService interface {
	RenderPDF(ctx context.Context, content string) ([]byte, error)
}

type pdfRenderService struct {
	disableSandbox bool
}

func NewPDFRenderService(disableSandbox bool) PDFRenderService {
	return &pdfRenderService{
		disableSandbox: disableSandbox,
	}
}

// RenderPDF implements PDFRenderService. A fresh browser context is used per
// call; rendering shares no state between requests.
func (s *pdfRenderService) RenderPDF(ctx context.Context, content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: resume content is empty", ErrInvalidInput)
	}

	html := fmt.Sprintf(documentFrame, content)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if s.disableSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 30*time.Second)
	defer reqCancel()

	var pdfData []byte
	err := chromedp.Run(reqCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	if len(pdfData) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrRenderFailed)
	}

	return pdfData, nil
}
