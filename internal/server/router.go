package server

import (
	"context"
	"net/http"
	"path"

	"diplomabuilder/internal/config"
	"diplomabuilder/internal/handlers"
	applog "diplomabuilder/internal/log"
)

func newRouter(builder config.BuilderConfig) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.HandleFunc("/builder", handlers.Builder)

	mux.HandleFunc("/api/diplomas/save", handlers.SaveDiploma)
	mux.HandleFunc("/api/diplomas/mine", handlers.MyDiplomas)
	mux.HandleFunc("/api/diplomas/archive", handlers.GenerateDiplomaImage)
	mux.HandleFunc("/api/diplomas/preview", handlers.DiplomaPreview)
	mux.HandleFunc("/api/emblems/state", handlers.StateEmblem)

	mux.HandleFunc("/api/admin/diplomas", handlers.RequireAdmin(handlers.ListDiplomas))
	mux.HandleFunc("/api/admin/diplomas/delete", handlers.RequireAdmin(handlers.DeleteDiploma))
	mux.HandleFunc("/api/admin/diplomas/bulk-delete", handlers.RequireAdmin(handlers.BulkDeleteDiplomas))
	mux.HandleFunc("/api/admin/diplomas/stats", handlers.RequireAdmin(handlers.DiplomaStats))
	mux.HandleFunc("/api/admin/diplomas/export", handlers.RequireAdmin(handlers.ExportDiplomasCSV))

	mux.HandleFunc("/", handlers.Home)

	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(builder.AssetRoot))))
	uploadsPrefix := "/" + path.Clean(builder.UploadDir) + "/"
	mux.Handle(uploadsPrefix, http.StripPrefix(uploadsPrefix, http.FileServer(http.Dir(builder.UploadDir))))

	applog.Debug(context.Background(), "routes registered", "uploads", uploadsPrefix)
	return mux
}
