package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// TestCSSMinification checks that CSS is minified as expected
func TestCSSMinification(t *testing.T) {
	got, err := newMinifier().String("text/css", `
		body {
			color: #fff;
			margin: 0  ;
		}
	`)
	if err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if want := `body{color:#fff;margin:0}`; got != want {
		t.Errorf("CSS minification mismatch:\nGot:      %q\nExpected: %q", got, want)
	}
}

// TestJSMinification checks that JavaScript is minified as expected
func TestJSMinification(t *testing.T) {
	got, err := newMinifier().String("application/javascript", `
		function add(a, b) {
			return a + b;
		}
	`)
	if err != nil {
		t.Fatalf("JS minification failed: %v", err)
	}
	if want := `function add(e,t){return e+t}`; got != want {
		t.Errorf("JS minification mismatch:\nGot:      %q\nExpected: %q", got, want)
	}
}

func TestMinifyTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeFile(t, filepath.Join(src, "app.css"), "body {\n  margin: 0 ;\n}\n")
	writeFile(t, filepath.Join(src, "nested", "boot.js"), "function add(a, b) {\n  return a + b;\n}\n")
	wasm := "\x00asm\x01\x00\x00\x00"
	writeFile(t, filepath.Join(src, "negatris.wasm"), wasm)

	if err := minifyTree(newMinifier(), src, filepath.Join(dst, "static")); err != nil {
		t.Fatalf("minifyTree failed: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(dst, "static", "app.css"))
	if err != nil {
		t.Fatalf("minified CSS missing: %v", err)
	}
	if string(css) != "body{margin:0}" {
		t.Errorf("Expected minified CSS, got %q", css)
	}

	js, err := os.ReadFile(filepath.Join(dst, "static", "nested", "boot.js"))
	if err != nil {
		t.Fatalf("nested JS missing: %v", err)
	}
	if strings.Contains(string(js), "\n") {
		t.Errorf("Expected JS without newlines, got %q", js)
	}

	copied, err := os.ReadFile(filepath.Join(dst, "static", "negatris.wasm"))
	if err != nil {
		t.Fatalf("wasm not copied: %v", err)
	}
	if !bytes.Equal(copied, []byte(wasm)) {
		t.Errorf("Expected wasm copied unchanged, got %q", copied)
	}
}

func TestMinifyTreeMissingSource(t *testing.T) {
	err := minifyTree(newMinifier(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	if err == nil {
		t.Error("Expected error for missing source directory")
	}
}

func TestReduction(t *testing.T) {
	if got := reduction(0, 0); got != 0 {
		t.Errorf("Expected 0 for empty input, got %v", got)
	}
	if got := reduction(200, 50); got != 75 {
		t.Errorf("Expected 75, got %v", got)
	}
}
