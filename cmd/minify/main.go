// Command minify writes minified copies of templates/ and static/ into dist/
// for production serving. Files the minifier does not understand (the wasm
// binary, images) are copied unchanged.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	var (
		src = flag.String("src", ".", "directory containing templates/ and static/")
		dst = flag.String("dst", "dist", "output directory")
	)
	flag.Parse()

	m := newMinifier()
	for _, dir := range []string{"templates", "static"} {
		if err := minifyTree(m, filepath.Join(*src, dir), filepath.Join(*dst, dir)); err != nil {
			log.Fatalf("Error minifying %s: %v", dir, err)
		}
	}

	fmt.Println("✅ Minification complete!")
	fmt.Printf("📁 Minified files are in the '%s' directory\n", *dst)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// minifyTree mirrors srcDir into dstDir, minifying the files it has a media
// type for.
func minifyTree(m *minify.M, srcDir, dstDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dstDir, rel)
		mediaType, ok := mediaTypes[filepath.Ext(path)]
		if !ok {
			return copyFile(path, out)
		}
		return minifyFile(m, path, out, mediaType)
	})
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	fmt.Printf("📦 %s: %d bytes → %d bytes (%.1f%% reduction)\n",
		srcPath, len(src), len(minified), reduction(len(src), len(minified)))
	return nil
}

func copyFile(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, data, 0644); err != nil {
		return err
	}
	fmt.Printf("📄 %s: copied (%d bytes)\n", srcPath, len(data))
	return nil
}

func reduction(before, after int) float64 {
	if before == 0 {
		return 0
	}
	return float64(before-after) / float64(before) * 100
}
