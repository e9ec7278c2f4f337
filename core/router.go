package core

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// Handler produces the response body for a matched route.
type Handler func(req *http.Request, params map[string]string) ([]byte, error)

type Route struct {
	Method     string
	Pattern    string
	URLPattern *regexp.Regexp
	ParamKeys  []string
	Handler    Handler
	Cacheable  bool
}

type RuntimeContext struct {
	Env         string
	EnableWatch bool
	OnReload    func()
}

type Router struct {
	config   Config
	env      string
	renderer *Renderer
	routes   []Route
}

// routeSpec is the site's entire surface: three fixed text pages plus the
// templated user page. Segments wrapped in brackets capture a path
// parameter under that name.
type routeSpec struct {
	Method   string
	Pattern  string
	Body     string
	Template string
}

var siteRoutes = []routeSpec{
	{Method: http.MethodGet, Pattern: "/", Body: "HELLO WORLD"},
	{Method: http.MethodGet, Pattern: "/about", Body: "This is about"},
	{Method: http.MethodGet, Pattern: "/contact", Body: "Contact Us"},
	{Method: http.MethodGet, Pattern: "/user/[name]", Template: "index.html"},
}

func RouteSummaries() []string {
	out := make([]string, 0, len(siteRoutes))
	for _, spec := range siteRoutes {
		out = append(out, spec.Method+" "+spec.Pattern)
	}
	return out
}

var NewRouter = func(config Config, ctx RuntimeContext) http.Handler {
	r := &Router{
		config:   config,
		env:      ctx.Env,
		renderer: NewRenderer(config, ctx.Env),
	}
	r.loadRoutes()

	if ctx.EnableWatch && ctx.OnReload != nil {
		if _, err := WatchForChanges([]string{config.TemplatesDir, config.PublicDir}, ctx.OnReload); err != nil {
			fmt.Println("⚠️  Watch disabled:", err)
		}
	}

	return r
}

func (r *Router) loadRoutes() {
	for _, spec := range siteRoutes {
		pattern, keys := compilePattern(spec.Pattern)
		route := Route{
			Method:     spec.Method,
			Pattern:    spec.Pattern,
			URLPattern: pattern,
			ParamKeys:  keys,
		}

		if spec.Template != "" {
			name := spec.Template
			route.Handler = func(req *http.Request, params map[string]string) ([]byte, error) {
				data := map[string]interface{}{}
				for k, v := range params {
					data[k] = v
				}
				return r.renderer.Render(name, data)
			}
			route.Cacheable = true
		} else {
			body := []byte(spec.Body)
			route.Handler = func(req *http.Request, params map[string]string) ([]byte, error) {
				return body, nil
			}
		}

		r.routes = append(r.routes, route)
	}
}

func compilePattern(pattern string) (*regexp.Regexp, []string) {
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return regexp.MustCompile("^$"), nil
	}

	parts := strings.Split(trimmed, "/")
	paramKeys := []string{}
	expr := ""

	for _, part := range parts {
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			paramKeys = append(paramKeys, part[1:len(part)-1])
			expr += "/([^/]+)"
		} else {
			expr += "/" + part
		}
	}

	return regexp.MustCompile("^" + strings.TrimPrefix(expr, "/") + "$"), paramKeys
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(req.URL.Path, "/")

	for _, route := range r.routes {
		matches := route.URLPattern.FindStringSubmatch(path)
		if matches == nil {
			continue
		}

		if req.Method != route.Method {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		params := map[string]string{}
		for i, key := range route.ParamKeys {
			params[key] = matches[i+1]
		}

		if r.config.DebugLogs {
			fmt.Printf("→ %s /%s\n", req.Method, path)
		}

		r.serve(w, req, route, params)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) serve(w http.ResponseWriter, req *http.Request, route Route, params map[string]string) {
	routeKey := cacheKey(req.URL.Path)

	if route.Cacheable && r.config.CacheEnabled {
		if cached, ok := GetCachedHTML(r.config, routeKey); ok {
			r.write(w, req, route, cached, true)
			return
		}
	}

	body, err := route.Handler(req, params)
	if err != nil {
		if IsNotFoundError(err) || IsTemplateNotFound(err) {
			http.NotFound(w, req)
			return
		}
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if route.Cacheable && r.config.CacheEnabled {
		if err := SaveCachedHTML(r.config, routeKey, body); err != nil && r.config.DebugLogs {
			fmt.Println("⚠️  Cache write failed:", err)
		}
	}

	r.write(w, req, route, body, false)
}

func (r *Router) write(w http.ResponseWriter, req *http.Request, route Route, body []byte, fromCache bool) {
	etag := generateETag(body)
	if req.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.config.DebugHeaders {
		w.Header().Set("X-Minisite-Route", route.Pattern)
		if fromCache {
			w.Header().Set("X-Minisite-Cache", "hit")
		}
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func cacheKey(urlPath string) string {
	key := strings.Trim(urlPath, "/")
	if key == "" {
		return "index"
	}
	return key
}

func generateETag(data []byte) string {
	h := md5.Sum(data)
	return `"` + hex.EncodeToString(h[:]) + `"`
}
