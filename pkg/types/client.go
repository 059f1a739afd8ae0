// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Summary types reported by the service.
const (
	SummaryParoleAnalysis = "parole_hearing_analysis"
	SummaryParoleHearing  = "parole_hearing_summary"
)

// ClientRecord is one case on the roster: the uploaded file's metadata,
// the service's markdown summary, and the structured case facts.
// Records are replaced wholesale, never edited in place.
type ClientRecord struct {
	// ID is unique within a roster; new records get max(ID)+1.
	ID int `json:"id" yaml:"id"`

	// Filename is the name of the uploaded PDF.
	Filename string `json:"filename" yaml:"filename"`

	// FileSize is the uploaded PDF size in bytes.
	FileSize int64 `json:"file_size" yaml:"file_size"`

	// ExtractedTextLength is the length of the text the service extracted.
	ExtractedTextLength int `json:"extracted_text_length" yaml:"extracted_text_length"`

	// MarkdownSummary is the service's free-text narrative.
	MarkdownSummary string `json:"markdown_summary" yaml:"markdown_summary"`

	Demographics Demographics `json:"demographics" yaml:"demographics"`

	// SummaryType tags which service operation produced the summary.
	SummaryType string `json:"summary_type" yaml:"summary_type"`
}

// DisplayName returns the client's name as shown in lists and filenames.
func (r ClientRecord) DisplayName() string {
	return r.Demographics.ClientInfo.Name
}

// SidebarClient is the list projection of a ClientRecord.
type SidebarClient struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Initials    string `json:"initials" yaml:"initials"`
	CDCRNumber  string `json:"cdcr_number" yaml:"cdcr_number"`
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
	Contact     string `json:"contact" yaml:"contact"`
	Status      string `json:"status" yaml:"status"`
}

// UploadFile is a local PDF selected for upload.
type UploadFile struct {
	// Name is the base filename sent in the multipart part.
	Name string

	// Size is len(Content).
	Size int64

	// Pages is the page count found by local inspection, or 0 if unknown.
	Pages int

	Content []byte
}
