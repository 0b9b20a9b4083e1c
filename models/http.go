package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChatRequest carries the conversation so far and the new user message.
type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Reply ChatMessage `json:"reply"`
}

// ImageAnalysisRequest asks the assistant to describe an image.
// FileContent is base64-encoded.
type ImageAnalysisRequest struct {
	Prompt      string `json:"prompt"`
	FileType    string `json:"fileType"`
	FileContent string `json:"fileContent"`
}

// ImageAnalysisResponse is the assistant answer about an image.
type ImageAnalysisResponse struct {
	Text string `json:"text"`
}

// SpeechRequest asks for the given text to be synthesized.
type SpeechRequest struct {
	Text string `json:"text"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	// Imported is the number of new records saved.
	Imported int `json:"imported"`

	// Duplicates is the number of parsed rows skipped because a record
	// with the same datetime already existed.
	Duplicates int `json:"duplicates"`

	// Skipped lists the rows that could not be parsed.
	Skipped []string `json:"skipped,omitempty"`

	// Message explains an import that saved nothing although the file
	// was readable.
	Message string `json:"message,omitempty"`
}

// SaveChatRequest is the body of an archive-chat request.
type SaveChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`

	// Fields maps invalid input fields to their messages.
	Fields map[string]string `json:"fields,omitempty"`
}
