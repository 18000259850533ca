package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"rice-app/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PaymentAdvicePDFData carries everything the advice template renders
type PaymentAdvicePDFData struct {
	Advice          models.PaymentAdvice
	Purchase        models.Purchase
	Vendor          models.Vendor
	Sauda           models.Sauda
	NetPayableWords string
	GeneratedAt     string
}

// GeneratePaymentAdvicePDF renders the advice template and prints it to an
// A4 PDF through headless Chrome.
func GeneratePaymentAdvicePDF(data PaymentAdvicePDFData) ([]byte, error) {
	if data.GeneratedAt == "" {
		data.GeneratedAt = time.Now().Format("02-Jan-2006")
	}

	tmpl, err := template.ParseFiles("templates/payment_advice_template.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	// Chrome needs a real file to navigate to
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "advice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
