// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Source is a web reference returned together with a grounded analysis.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Analysis is the result of an AI trend analysis: markdown text and the
// web sources it was grounded on.
type Analysis struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// ArchivedAnalysis is an append-only snapshot of an analysis shown to the
// user.
type ArchivedAnalysis struct {
	ID        string   `json:"id"`
	UserEmail string   `json:"userEmail"`
	Datetime  string   `json:"datetime"`
	Analysis  Analysis `json:"analysis"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ArchivedChat is an append-only snapshot of a whole conversation.
type ArchivedChat struct {
	ID        string        `json:"id"`
	UserEmail string        `json:"userEmail"`
	Datetime  string        `json:"datetime"`
	Messages  []ChatMessage `json:"messages"`
}

// ArchivedRecordEdit is the audit trail entry written every time a diary
// record is edited. It keeps both the record before and after the change.
type ArchivedRecordEdit struct {
	ID             string       `json:"id"`
	UserEmail      string       `json:"userEmail"`
	Datetime       string       `json:"datetime"`
	RecordID       string       `json:"recordId"`
	OriginalRecord HealthRecord `json:"originalRecord"`
	UpdatedRecord  HealthRecord `json:"updatedRecord"`
}
