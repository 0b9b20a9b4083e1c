package models

// LabResultType classifies an uploaded laboratory result.
type LabResultType string

const (
	LabResultBlood LabResultType = "blood"
	LabResultUrine LabResultType = "urine"
	LabResultOther LabResultType = "other"
)

// IsValid reports whether t is one of the supported result types.
func (t LabResultType) IsValid() bool {
	switch t {
	case LabResultBlood, LabResultUrine, LabResultOther:
		return true
	}
	return false
}

// LabResult is an uploaded image of a laboratory analysis. It is immutable
// once stored; the only mutation is deletion.
type LabResult struct {
	ID        string        `json:"id"`
	UserEmail string        `json:"userEmail"`
	Datetime  string        `json:"datetime"`
	Type      LabResultType `json:"type"`
	FileName  string        `json:"fileName"`

	// FileType is the MIME type of the image, e.g. "image/png".
	FileType string `json:"fileType"`

	// FileContent is the base64-encoded image body.
	FileContent string `json:"fileContent"`
}
