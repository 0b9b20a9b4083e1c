// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	records := h.services.DiaryService.List(r.Context(), email)
	if records == nil {
		records = []models.HealthRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	var record models.HealthRecord
	if !decodeJSON(w, r, maxJSONBody, "Handler.addRecord", &record) {
		return
	}

	saved, err := h.services.DiaryService.Add(r.Context(), email, record)
	if err != nil {
		writeError(w, r, "Handler.addRecord", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// editRecord replaces the record named in the path. An id in the body is
// ignored.
func (h *Handler) editRecord(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	var record models.HealthRecord
	if !decodeJSON(w, r, maxJSONBody, "Handler.editRecord", &record) {
		return
	}
	record.ID = pathParam(r, "id")

	saved, err := h.services.DiaryService.Edit(r.Context(), email, record)
	if err != nil {
		writeError(w, r, "Handler.editRecord", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.DiaryService.Delete(r.Context(), email, pathParam(r, "id")); err != nil {
		writeError(w, r, "Handler.deleteRecord", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// importRecords takes the CSV file as the raw request body. A file whose
// rows are all in the diary already is not an error: the answer is 200 with
// nothing imported and a message.
func (h *Handler) importRecords(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.services.DiaryService.Import(r.Context(), email, http.MaxBytesReader(w, r.Body, maxCSVBody))
	switch {
	case errors.Is(err, service.ErrNothingToImport):
		result.Imported = 0
		result.Message = app.MsgNothingToImport
	case err != nil:
		writeError(w, r, "Handler.importRecords", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) exportRecords(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.services.DiaryService.Export(r.Context(), email, &buf); err != nil {
		writeError(w, r, "Handler.exportRecords", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="diary.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
