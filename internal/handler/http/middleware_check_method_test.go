// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/items", ok)
	router.Put("/items/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := newCheckMethodRouter()

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/items", http.StatusOK},
		{http.MethodPost, "/items", http.StatusNotFound},
		{http.MethodPut, "/items/42", http.StatusOK},
		{http.MethodDelete, "/items/42", http.StatusNotFound},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_RegisteredMethodIsServed(t *testing.T) {
	router := newCheckMethodRouter()
	rec := httptest.NewRecorder()

	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodPut, "/items/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
