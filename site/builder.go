// Package site turns a directory of Markdown files into a static HTML
// site: one page per source file, a generated index, a stylesheet and
// any configured media assets.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/zliel/rsmd"
)

// Builder renders every Markdown file under an input directory into an
// output directory. The zero value is not usable; construct one with
// NewBuilder.
type Builder struct {
	cfg       rsmd.Config
	recursive bool
	logger    *slog.Logger

	parser   *rsmd.Parser
	renderer *rsmd.Renderer
}

// NewBuilder returns a Builder for cfg. When recursive is false only
// the top level of the input directory is scanned. A nil logger falls
// back to slog.Default.
func NewBuilder(cfg rsmd.Config, recursive bool, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cfg:       cfg,
		recursive: recursive,
		logger:    logger,
		parser:    rsmd.NewParser(cfg),
		renderer:  rsmd.NewRenderer(cfg),
	}
}

// Build renders the site. Pages build concurrently; the first failure
// cancels the rest and is returned.
func (b *Builder) Build(ctx context.Context, inputDir, outputDir string) error {
	pages, err := b.discoverPages(inputDir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no markdown files in %s", inputDir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	go func() {
		defer close(jobs)
		for _, page := range pages {
			select {
			case jobs <- page:
			case <-ctx.Done():
				return
			}
		}
	}()

	workers := min(runtime.NumCPU(), len(pages))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				if err := b.buildPage(inputDir, outputDir, page); err != nil {
					fail(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(outputDir, "index.html"),
		[]byte(b.renderer.RenderIndex(pages)), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	if err := b.writeAssets(outputDir); err != nil {
		return err
	}
	b.logger.Info("site built", "pages", len(pages), "output", outputDir)
	return nil
}

// discoverPages lists Markdown files as slash-separated paths relative
// to the input directory, sorted for a stable index.
func (b *Builder) discoverPages(inputDir string) ([]string, error) {
	var pages []string
	if b.recursive {
		err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			rel, err := filepath.Rel(inputDir, path)
			if err != nil {
				return err
			}
			pages = append(pages, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan input dir: %w", err)
		}
	} else {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return nil, fmt.Errorf("read input dir: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
				pages = append(pages, e.Name())
			}
		}
	}
	sort.Strings(pages)
	return pages, nil
}

// buildPage renders one source file into its .html counterpart,
// creating parent directories for nested pages.
func (b *Builder) buildPage(inputDir, outputDir, relPath string) error {
	src, err := os.ReadFile(filepath.Join(inputDir, filepath.FromSlash(relPath)))
	if err != nil {
		return fmt.Errorf("read %s: %w", relPath, err)
	}
	meta, body := rsmd.SplitFrontMatter(string(src))
	blocks := b.parser.Parse(body)

	outRel := strings.TrimSuffix(relPath, ".md") + ".html"
	outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", outRel, err)
	}
	page := b.renderer.RenderPage(outRel, blocks)
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outRel, err)
	}
	b.logger.Debug("page built", "source", relPath, "output", outRel, "title", meta.Title)
	return nil
}

// writeAssets puts the stylesheet and favicon where the generated
// pages link them: styles.css (or the custom CSS file) at the output
// root, the favicon under media/.
func (b *Builder) writeAssets(outputDir string) error {
	if css := b.cfg.HTML.CSSFile; css == "default" || css == "" {
		theme, ok := rsmd.ThemeByName(b.cfg.HTML.Theme)
		if !ok {
			theme = rsmd.DefaultTheme()
			b.logger.Warn("unknown theme, using default", "theme", b.cfg.HTML.Theme)
		}
		path := filepath.Join(outputDir, "styles.css")
		if err := os.WriteFile(path, []byte(theme.CSS), 0o644); err != nil {
			return fmt.Errorf("write stylesheet: %w", err)
		}
	} else {
		if err := copyFile(css, filepath.Join(outputDir, filepath.Base(css))); err != nil {
			return fmt.Errorf("copy stylesheet: %w", err)
		}
	}

	if fav := b.cfg.HTML.FaviconFile; fav != "" {
		mediaDir := filepath.Join(outputDir, "media")
		if err := os.MkdirAll(mediaDir, 0o755); err != nil {
			return fmt.Errorf("create media dir: %w", err)
		}
		if err := copyFile(fav, filepath.Join(mediaDir, filepath.Base(fav))); err != nil {
			return fmt.Errorf("copy favicon: %w", err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
