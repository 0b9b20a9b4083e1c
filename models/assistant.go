package models

// InlineImage is an image sent to the assistant together with a prompt.
type InlineImage struct {
	MIMEType string
	Data     []byte
}
