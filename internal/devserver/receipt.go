package devserver

import (
	"bytes"
	"fmt"

	"github.com/stayease/stayease/internal/domain"
)

// receiptPDF renders a minimal single-page PDF for a visit appointment. The
// real backend owns receipt rendering; the client treats the payload as an
// opaque blob, so this only needs to be a structurally plausible file.
func receiptPDF(apt *domain.Appointment) []byte {
	title := "StayEase visit receipt"
	lines := []string{
		fmt.Sprintf("Receipt #%d", apt.ID),
		fmt.Sprintf("Scheduled: %s", apt.AppointmentTime),
		fmt.Sprintf("Status: %s", apt.Status),
	}
	if apt.Listing != nil {
		lines = append(lines, fmt.Sprintf("Property: %s, %s", apt.Listing.Title, apt.Listing.Location))
	}
	if apt.User != nil {
		lines = append(lines, fmt.Sprintf("Visitor: %s", apt.User.FullName))
	}

	var content bytes.Buffer
	content.WriteString("BT /F1 14 Tf 72 760 Td (" + pdfEscape(title) + ") Tj ET\n")
	y := 730
	for _, line := range lines {
		fmt.Fprintf(&content, "BT /F1 10 Tf 72 %d Td (%s) Tj ET\n", y, pdfEscape(line))
		y -= 16
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func pdfEscape(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}
