package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Route("/api/records", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Post("/", h.addRecord)
			r.Put("/{id}", h.editRecord)
			r.Delete("/{id}", h.deleteRecord)
			r.Post("/import", h.importRecords)
			r.Get("/export", h.exportRecords)
		})

		r.Route("/api/labs", func(r chi.Router) {
			r.Get("/", h.listLabResults)
			r.Post("/", h.addLabResult)
			r.Delete("/{id}", h.deleteLabResult)
		})

		r.Route("/api/archive", func(r chi.Router) {
			r.Get("/analyses", h.listAnalyses)
			r.Delete("/analyses/{id}", h.deleteAnalysis)
			r.Get("/chats", h.listChats)
			r.Post("/chats", h.saveChat)
			r.Delete("/chats/{id}", h.deleteChat)
			r.Get("/edits", h.listEdits)
			r.Delete("/edits/{id}", h.deleteEdit)
		})

		r.Route("/api/assistant", func(r chi.Router) {
			r.Get("/greeting", h.greeting)
			r.Post("/chat", h.chat)
			r.Post("/analysis", h.analyze)
			r.Post("/image", h.analyzeImage)
			r.Post("/speech", h.speak)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/users", h.listUsers)
			r.Delete("/users/{email}", h.deleteUser)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
