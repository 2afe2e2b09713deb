package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rebuildDebounce = 500 * time.Millisecond

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the page locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then serves the output
directory over HTTP. It watches the data file and the layouts, static and
notes directories, and rebuilds the page when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var mu sync.Mutex
		rebuild := func() {
			mu.Lock()
			defer mu.Unlock()
			if err := runBuildProcess(cmd, appConfig); err != nil {
				logger.Error("build failed", zap.Error(err))
				return
			}
			logger.Info("site rebuilt")
		}
		rebuild()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()
		watchPaths(watcher, watchRoots())
		watchDataSource(watcher, appConfig.DataSource)
		go watchLoop(ctx, watcher, rebuild)

		addr := fmt.Sprintf(":%d", serverPort)
		srv := &http.Server{
			Addr:              addr,
			Handler:           newRouter(appConfig.OutputDir, appConfig.BaseURL),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logger.Info("serving site",
			zap.String("dir", appConfig.OutputDir),
			zap.String("url", "http://localhost"+addr+normalizeBase(appConfig.BaseURL)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

func normalizeBase(base string) string {
	base = "/" + strings.Trim(base, "/")
	if base != "/" {
		base += "/"
	}
	return base
}

// newRouter serves outputDir under baseURL with caching disabled.
func newRouter(outputDir, baseURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	files := http.FileServer(http.Dir(outputDir))
	serve := func(w http.ResponseWriter, r *http.Request) {
		// No directory listings: a directory without index.html is a 404.
		if strings.HasSuffix(r.URL.Path, "/") {
			if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(r.URL.Path), "index.html")); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	}

	base := normalizeBase(baseURL)
	if base == "/" {
		r.Get("/*", serve)
		return r
	}
	r.Get(base+"*", http.StripPrefix(strings.TrimSuffix(base, "/"), http.HandlerFunc(serve)).ServeHTTP)
	r.Get(strings.TrimSuffix(base, "/"), func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, base, http.StatusMovedPermanently)
	})
	return r
}

// watchRoots lists the input directories of a build.
func watchRoots() []string {
	return []string{appConfig.LayoutsDir, appConfig.StaticDir, appConfig.NotesDir}
}

// watchDataSource watches the directory of a local data file so editors that
// replace the file are caught. Remote sources are not watched.
func watchDataSource(watcher *fsnotify.Watcher, src string) {
	if src == "" || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return
	}
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		logger.Warn("failed to watch data source", zap.String("path", src), zap.Error(err))
	}
}

func watchPaths(watcher *fsnotify.Watcher, roots []string) {
	seen := make(map[string]bool)
	for _, root := range roots {
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		if _, err := os.Stat(root); os.IsNotExist(err) {
			logger.Debug("path not found, not watching", zap.String("path", root))
			continue
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				logger.Warn("walk failed", zap.String("path", path), zap.Error(err))
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && isOutputDir(path) {
				return filepath.SkipDir
			}
			if err := watcher.Add(path); err != nil {
				logger.Warn("failed to watch", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
		if err != nil {
			logger.Warn("initial directory walk failed", zap.String("root", root), zap.Error(err))
		}
	}
}

func isOutputDir(path string) bool {
	out, err1 := filepath.Abs(appConfig.OutputDir)
	p, err2 := filepath.Abs(path)
	return err1 == nil && err2 == nil && out == p
}

// relevant reports whether an event should trigger a rebuild. Writes under
// the output directory are the build's own and are ignored.
func relevant(event fsnotify.Event) bool {
	if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
		return false
	}
	out, err := filepath.Abs(appConfig.OutputDir)
	if err != nil {
		return true
	}
	p, err := filepath.Abs(event.Name)
	if err != nil {
		return true
	}
	return p != out && !strings.HasPrefix(p, out+string(filepath.Separator))
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rebuild func()) {
	var buildTimer *time.Timer
	defer func() {
		if buildTimer != nil {
			buildTimer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			logger.Info("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
				}
			}
			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(rebuildDebounce, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
