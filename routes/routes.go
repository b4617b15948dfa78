package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mbolis/speech-survey/app"
	"github.com/mbolis/speech-survey/httpx"
	"github.com/mbolis/speech-survey/log"
	"github.com/mbolis/speech-survey/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(
		middleware.RequestID,
		middlewares.RequestLogger,
		middleware.Recoverer,
		middlewares.CORS(),
	)
	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.LogNotFound(w, r, "route", r.URL.Path)
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.LogStatusMsg(w, r, http.StatusMethodNotAllowed, log.DebugLevel, "route", "Method Not Allowed")
	})

	root.Get("/", serveIndex(app.StaticDir))
	root.Get("/assets/*", serveAssets(filepath.Join(app.StaticDir, "assets")))

	root.Post("/submit-survey/", SubmitSurvey(app))
	root.Post("/upload/", UploadFile(app))
	root.Post("/login/", Login(app))
	root.Get("/get_upload_list", ListUploads(app))

	return root
}

func serveIndex(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, r, filepath.Join(dir, "index.html"))
	}
}

func serveAssets(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// rooted Clean drops any ".." that would climb out of dir
		name := path.Clean("/" + chi.URLParam(r, "*"))
		serveFile(w, r, filepath.Join(dir, filepath.FromSlash(name)))
	}
}

func serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := os.Open(name)
	if err != nil {
		httpx.LogNotFound(w, r, "static", name)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		httpx.LogNotFound(w, r, "static", name)
		return
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}
