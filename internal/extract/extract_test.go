package extract

import "testing"

func TestPDFTextRejectsEmptyData(t *testing.T) {
	if _, err := PDFText(nil); err == nil {
		t.Fatalf("expected error for empty data")
	}
}

func TestPDFTextRejectsNonPDF(t *testing.T) {
	if _, err := PDFText([]byte("<html><body>not a pdf</body></html>")); err == nil {
		t.Fatalf("expected error for non-PDF payload")
	}
}
