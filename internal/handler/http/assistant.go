// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ChatResponse{Reply: h.services.AssistantService.Greeting()}, http.StatusOK)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req models.ChatRequest
	if !decodeJSON(w, r, maxJSONBody, "Handler.chat", &req) {
		return
	}

	reply, err := h.services.AssistantService.Chat(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.chat", err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Reply: reply}, http.StatusOK)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	analysis, err := h.services.AssistantService.Analyze(r.Context(), email)
	if err != nil {
		writeError(w, r, "Handler.analyze", err)
		return
	}

	utils.WriteJSON(w, analysis, http.StatusOK)
}

func (h *Handler) analyzeImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req models.ImageAnalysisRequest
	if !decodeJSON(w, r, maxImageBody, "Handler.analyzeImage", &req) {
		return
	}

	text, err := h.services.AssistantService.AnalyzeImage(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.analyzeImage", err)
		return
	}

	utils.WriteJSON(w, models.ImageAnalysisResponse{Text: text}, http.StatusOK)
}

// speak answers with a WAV file. The audio is buffered so that a failed
// synthesis still gets a JSON error.
func (h *Handler) speak(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req models.SpeechRequest
	if !decodeJSON(w, r, maxJSONBody, "Handler.speak", &req) {
		return
	}

	var audio bytes.Buffer
	if err := h.services.AssistantService.Speak(r.Context(), req.Text, &audio); err != nil {
		writeError(w, r, "Handler.speak", err)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(audio.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(audio.Bytes())
}
