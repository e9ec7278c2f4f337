package core

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/sprig/v3"
)

// Renderer turns a named template from the templates directory into final
// HTML. In prod mode parsed templates are kept around between renders; in
// dev mode every render reparses so edits show up immediately.
type Renderer struct {
	config Config
	env    string

	mu     sync.Mutex
	parsed map[string]*template.Template
}

func NewRenderer(config Config, env string) *Renderer {
	return &Renderer{
		config: config,
		env:    env,
		parsed: map[string]*template.Template{},
	}
}

func (r *Renderer) Render(name string, data map[string]interface{}) ([]byte, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	if r.env != "prod" {
		return r.parse(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[name]; ok {
		return tmpl, nil
	}

	tmpl, err := r.parse(name)
	if err != nil {
		return nil, err
	}
	r.parsed[name] = tmpl

	return tmpl, nil
}

func (r *Renderer) parse(name string) (*template.Template, error) {
	path := filepath.Join(r.config.TemplatesDir, name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl := template.New(filepath.Base(path)).
		Funcs(sprig.HtmlFuncMap()).
		Funcs(SiteTemplateFuncs(r.env, r.config))

	tmpl, err := tmpl.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return tmpl, nil
}
