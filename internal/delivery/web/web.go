// Package web hosts the single-page app: built assets in production, the dev
// asset server otherwise.
package web

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mediguard-api/config"
	"mediguard-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// NewHandler picks static serving or the dev proxy based on cfg.
func NewHandler(cfg config.AppConfig, log *logrus.Logger) (http.Handler, error) {
	if !cfg.IsProduction() && cfg.DevServerURL != "" {
		log.Infof("Proxying SPA requests to dev server %s", cfg.DevServerURL)
		return NewDevProxy(cfg.DevServerURL, log)
	}
	log.Infof("Serving SPA from %s", cfg.StaticDir)
	return NewStaticHandler(cfg.StaticDir), nil
}

type staticHandler struct {
	dir   string
	files http.Handler
}

// NewStaticHandler serves files from dir, falling back to dir/index.html for
// any path that is not a file so client-side routes resolve.
func NewStaticHandler(dir string) http.Handler {
	return &staticHandler{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if isAPIPath(r.URL.Path) {
		response.NotFound(w, "")
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		h.files.ServeHTTP(w, r)
		return
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.NotFound(w, "")
		return
	}
	http.ServeFile(w, r, index)
}

// NewDevProxy forwards everything except API paths to target.
func NewDevProxy(target string, log *logrus.Logger) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid dev server url %q", target)
	}

	proxy := httputil.NewSingleHostReverseProxy(u)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warnf("Dev server proxy error for %s: %v", r.URL.Path, err)
		response.Error(w, http.StatusBadGateway, "Dev server unavailable")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIPath(r.URL.Path) {
			response.NotFound(w, "")
			return
		}
		proxy.ServeHTTP(w, r)
	}), nil
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
