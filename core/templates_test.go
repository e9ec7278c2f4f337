package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRenderer_SubstitutesData(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `<p>Hi {{ .name }}</p>`)

	r := NewRenderer(Config{TemplatesDir: dir}, "dev")

	out, err := r.Render("index.html", map[string]interface{}{"name": "ada"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if string(out) != "<p>Hi ada</p>" {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRenderer_SprigFuncsAvailable(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `{{ .name | upper }}`)

	r := NewRenderer(Config{TemplatesDir: dir}, "dev")

	out, err := r.Render("index.html", map[string]interface{}{"name": "ada"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if string(out) != "ADA" {
		t.Errorf("expected sprig upper to apply, got: %s", out)
	}
}

func TestRenderer_SiteFuncsAvailable(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `{{ versioned "/static/missing.css" }}`)

	r := NewRenderer(Config{TemplatesDir: dir, PublicDir: t.TempDir(), OutputDir: t.TempDir()}, "dev")

	out, err := r.Render("index.html", map[string]interface{}{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if string(out) != "/static/missing.css" {
		t.Errorf("expected passthrough path for missing asset, got: %s", out)
	}
}

func TestRenderer_MissingTemplate(t *testing.T) {
	r := NewRenderer(Config{TemplatesDir: t.TempDir()}, "dev")

	_, err := r.Render("index.html", nil)
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if !IsTemplateNotFound(err) {
		t.Errorf("expected template-not-found error, got: %v", err)
	}
}

func TestRenderer_DevModeReparsesOnEveryRender(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `one`)

	r := NewRenderer(Config{TemplatesDir: dir}, "dev")

	out, err := r.Render("index.html", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "one" {
		t.Fatalf("unexpected first render: %s", out)
	}

	writeTemplate(t, dir, "index.html", `two`)

	out, err = r.Render("index.html", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "two" {
		t.Errorf("expected dev render to pick up edit, got: %s", out)
	}
}

func TestRenderer_ProdModeKeepsParsedTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `one`)

	r := NewRenderer(Config{TemplatesDir: dir}, "prod")

	if _, err := r.Render("index.html", nil); err != nil {
		t.Fatal(err)
	}

	writeTemplate(t, dir, "index.html", `two`)

	out, err := r.Render("index.html", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "one" {
		t.Errorf("expected prod render to reuse parsed template, got: %s", out)
	}
}

func TestRenderer_EscapesTemplateOutput(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", `{{ .name }}`)

	r := NewRenderer(Config{TemplatesDir: dir}, "dev")

	out, err := r.Render("index.html", map[string]interface{}{"name": "<b>bold</b>"})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(out), "<b>") {
		t.Errorf("expected engine escaping to apply, got: %s", out)
	}
}
