package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourism/internal/domain/models"
	"tourism/internal/utils"

	"github.com/phpdave11/gofpdf"
)

type receiptData struct {
	Booking  models.UserBooking
	Customer models.Principal
}

func buildReceiptPDF(d receiptData, issuedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	receiptNo := fmt.Sprintf("RCP-%d-%d", d.Booking.ID, d.Booking.PackageID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : "+receiptNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDate(issuedAt))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name     : %s", safe(DisplayName(d.Customer), "-")),
		fmt.Sprintf("Email    : %s", safe(d.Customer.Email, "-")),
		fmt.Sprintf("Phone    : %s", safe(d.Customer.Phone, "-")),
		fmt.Sprintf("Location : %s", safe(d.Customer.Location, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Package:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	details := []string{
		fmt.Sprintf("Title       : %s", safe(d.Booking.Title, "-")),
		fmt.Sprintf("Destination : %s", safe(d.Booking.Destination, "-")),
		fmt.Sprintf("Duration    : %s", safe(d.Booking.Duration, "-")),
		fmt.Sprintf("Booked on   : %s", safe(utils.FormatDateTime(d.Booking.BookedOn), "-")),
	}
	for _, s := range details {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	if desc := strings.TrimSpace(d.Booking.Description); desc != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, desc, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatPrice(d.Booking.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry this receipt on the first day of the tour.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.Booking.ID, utils.SafeFilenamePart(d.Booking.Title))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
