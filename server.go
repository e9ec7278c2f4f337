package minisite

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-minisite/minisite/core"
)

type RuntimeConfig struct {
	Env         string
	EnableCache bool
	Port        int
}

var (
	ListenAndServe = http.ListenAndServe
	Exit           = os.Exit
)

var Start = func(cfg RuntimeConfig) {
	fmt.Println("Starting minisite in", cfg.Env, "mode...")

	addr, handler := BuildServer(cfg)

	fmt.Printf("✅ minisite running at http://localhost%s\n", addr)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Server failed:", err)
		Exit(1)
	}
}

func BuildServer(cfg RuntimeConfig) (string, http.Handler) {
	config := core.LoadConfig(core.ConfigFile)
	config.CacheEnabled = cfg.EnableCache

	port := cfg.Port
	if port == 0 {
		port = config.Port
	}

	mux := http.NewServeMux()

	publicDir := config.PublicDir
	cacheStaticDir := filepath.Join(config.OutputDir, "static")

	if cfg.Env == "dev" {
		setupDevStaticRoutes(mux, publicDir)

		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__minisite_reload", reloader.Handler)

		mux.Handle("/", core.NewRouter(*config, core.RuntimeContext{
			Env:         "dev",
			EnableWatch: true,
			OnReload:    reloader.BroadcastReload,
		}))
	} else {
		mux.Handle("/static/", makeStaticHandler(publicDir, cacheStaticDir))

		mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			http.ServeFile(w, r, filepath.Join(publicDir, "favicon.ico"))
		})

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			http.ServeFile(w, r, filepath.Join(publicDir, "robots.txt"))
		})

		mux.Handle("/", core.NewRouter(*config, core.RuntimeContext{
			Env: cfg.Env,
		}))
	}

	return fmt.Sprintf(":%d", port), mux
}

func setupDevStaticRoutes(mux *http.ServeMux, publicDir string) {
	staticHandler := http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.FileServer(http.Dir(publicDir)).ServeHTTP(w, r)
	}))
	mux.Handle("/static/", staticHandler)

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, filepath.Join(publicDir, "favicon.ico"))
	})

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, filepath.Join(publicDir, "robots.txt"))
	})
}

func makeStaticHandler(publicDir, cacheDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri := r.URL.Path
		if i := strings.Index(uri, "?"); i != -1 {
			uri = uri[:i]
		}
		trimmed := strings.TrimPrefix(uri, "/static/")

		if strings.Contains(trimmed, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		cachedFile := filepath.Join(cacheDir, trimmed)
		gzipFile := cachedFile + ".gz"

		if acceptsGzip(r) {
			if _, err := os.Stat(gzipFile); err == nil {
				w.Header().Set("Content-Type", detectMimeType(cachedFile))
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				http.ServeFile(w, r, gzipFile)
				return
			}
		}

		if _, err := os.Stat(cachedFile); err == nil {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			http.ServeFile(w, r, cachedFile)
			return
		}

		publicFile := filepath.Join(publicDir, trimmed)
		if _, err := os.Stat(publicFile); err == nil {
			serveFileWithHeaders(w, r, publicFile, "public, max-age=31536000, immutable")
			return
		}

		http.NotFound(w, r)
	})
}

func serveFileWithHeaders(w http.ResponseWriter, r *http.Request, filePath, cacheControl string) {
	w.Header().Set("Content-Type", detectMimeType(filePath))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, filePath)
}

func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
