// Package transport wires the services onto their routes.
package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mobilebanquet/banquet-service/internal/admin"
	"github.com/mobilebanquet/banquet-service/internal/blob"
	"github.com/mobilebanquet/banquet-service/internal/dashboard"
	"github.com/mobilebanquet/banquet-service/internal/dish"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/handler"
	"github.com/mobilebanquet/banquet-service/internal/ingredient"
	"github.com/mobilebanquet/banquet-service/internal/order"
	"github.com/mobilebanquet/banquet-service/internal/supplier"
	"github.com/mobilebanquet/banquet-service/internal/sysconfig"
)

// Deps carries the collaborators the router needs; everything is
// constructed once in main and injected.
type Deps struct {
	Store docstore.Store
	Auth  *admin.Auth
	Blobs blob.Store
	// BlobFallback is the local store used when a put to Blobs fails;
	// nil when Blobs already is local.
	BlobFallback blob.Store
	// UploadDir, when non-empty, is served under /uploads for the local
	// blob store's relative URLs.
	UploadDir string
}

func NewRouter(deps Deps) *chi.Mux {
	orders := handler.NewOrderHandler(order.NewService(deps.Store))
	dishes := handler.NewDishHandler(dish.NewService(deps.Store))
	suppliers := handler.NewSupplierHandler(supplier.NewService(deps.Store))
	admins := handler.NewAdminHandler(
		dashboard.NewService(deps.Store),
		sysconfig.NewService(deps.Store),
		ingredient.NewService(deps.Store),
		deps.Auth,
		deps.Blobs,
		deps.BlobFallback,
	)

	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.List)
			r.Post("/", orders.Create)
			r.Get("/{id}", orders.GetByID)
			r.Put("/{id}", orders.Replace)
			r.Delete("/{id}", orders.Delete)
		})

		r.Route("/dishes", func(r chi.Router) {
			r.Get("/", dishes.List)
			r.Post("/", dishes.Create)
			r.Get("/{id}", dishes.GetByID)
			r.Put("/{id}", dishes.Replace)
			r.Delete("/{id}", dishes.Delete)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", suppliers.List)
			r.Post("/", suppliers.Create)
			r.Put("/{id}", suppliers.Replace)
			r.Delete("/{id}", suppliers.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", admins.Stats)
			r.Get("/config", admins.ListConfigs)
			r.Post("/config", admins.SaveConfig)
			r.Get("/config/{id}", admins.GetConfig)
			r.Get("/ingredients", admins.ListIngredients)
			r.Post("/ingredients", admins.SaveIngredient)
			r.Delete("/ingredients/{id}", admins.DeleteIngredient)
			r.Post("/upload", admins.Upload)
			r.Post("/login", admins.Login)
		})
	})

	if deps.UploadDir != "" {
		uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
		r.Get("/uploads/*", uploads.ServeHTTP)
	}

	return r
}
