package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/rohits-web03/voxdesk/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/voxdesk/internal/api/handlers"
	"github.com/rohits-web03/voxdesk/internal/api/middleware"
	"github.com/rs/cors"
)

func SetupRouter(h *handlers.Handler, corsOptions cors.Options) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(corsOptions)

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	apiMux := http.NewServeMux()

	// ---------- ATTACHMENTS ----------
	apiMux.HandleFunc("POST /attachments/upload-url", h.CreateUploadURL)
	apiMux.HandleFunc("POST /attachments", h.RegisterAttachment)
	apiMux.HandleFunc("GET /attachments/{id}", h.GetAttachment)

	// ---------- AGENTS ----------
	apiMux.HandleFunc("GET /agents", h.ListAgents)
	apiMux.HandleFunc("POST /agents", h.CreateAgent)
	apiMux.HandleFunc("GET /agents/{id}", h.GetAgent)
	apiMux.HandleFunc("PUT /agents/{id}", h.UpdateAgent)

	// ---------- SELECT OPTIONS ----------
	apiMux.HandleFunc("GET /languages", h.ListLanguages)
	apiMux.HandleFunc("GET /voices", h.ListVoices)
	apiMux.HandleFunc("GET /prompts", h.ListPrompts)
	apiMux.HandleFunc("GET /models", h.ListModels)

	// ---------- SETTINGS ----------
	apiMux.HandleFunc("GET /tags", h.ListTags)
	apiMux.HandleFunc("POST /tags", h.CreateTag)
	apiMux.HandleFunc("DELETE /tags/{id}", h.DeleteTag)
	apiMux.HandleFunc("GET /users", h.ListUsers)
	apiMux.HandleFunc("POST /users", h.CreateUser)

	mainMux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiMux))

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
