package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Image listing cache settings
const (
	ImageCacheSize = 8
	ImageCacheTTL  = time.Minute
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// ImagesResponse lists the image files served under /images/
type ImagesResponse struct {
	Images []string `json:"images"`
}

// ImageHandler lists the static image directory. Listings are cached briefly.
type ImageHandler struct {
	fsys  fs.FS
	root  string
	cache *expirable.LRU[string, []string]
}

// NewImageHandler serves listings of dir
func NewImageHandler(dir string) *ImageHandler {
	return newImageHandler(os.DirFS(dir), dir, ImageCacheTTL)
}

func newImageHandler(fsys fs.FS, root string, ttl time.Duration) *ImageHandler {
	return &ImageHandler{
		fsys:  fsys,
		root:  root,
		cache: expirable.NewLRU[string, []string](ImageCacheSize, nil, ttl),
	}
}

// List returns the image file names in the directory
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.images()
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListImages, "dir", h.root, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgListImages)
		return
	}
	respondJSON(w, http.StatusOK, ImagesResponse{Images: images})
}

// FileServer serves the image files themselves
func (h *ImageHandler) FileServer() http.Handler {
	return http.FileServer(http.FS(h.fsys))
}

func (h *ImageHandler) images() ([]string, error) {
	if cached, ok := h.cache.Get(h.root); ok {
		return cached, nil
	}

	entries, err := fs.ReadDir(h.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		entries, err = nil, nil
	}
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		images = append(images, e.Name())
	}
	sort.Strings(images)

	h.cache.Add(h.root, images)
	logger.Info(LogMsgImagesListed, "dir", h.root, "count", len(images))
	return images, nil
}
