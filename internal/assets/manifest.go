// Package assets описывает версионированный список статических файлов,
// которые офлайн-слой кэширует для интерфейса хранилища.
package assets

import (
	"fmt"
	"strings"
)

const cachePrefix = "vault-cache-v"

var defaultFiles = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/js/app.js",
	"/js/pdf.min.js",
	"/js/pdf.worker.min.js",
	"/manifest.json",
	"/icons/192.png",
	"/icons/512.png",
	"/icons/maskable.png",
	"/icons/favicon.ico",
	"/images/1_add.png",
	"/images/2.png",
	"/images/3.png",
	"/images/4.png",
	"/images/5.png",
	"/images/6.png",
}

// Manifest — версия и пути кэшируемых файлов. Смена версии делает старые кэши устаревшими.
type Manifest struct {
	Version string   `json:"version"`
	Cache   string   `json:"cache"`
	Files   []string `json:"files"`
}

// Default возвращает манифест со стандартным списком файлов.
func Default(version string) Manifest {
	if version == "" {
		version = "1"
	}
	files := make([]string, len(defaultFiles))
	copy(files, defaultFiles)
	return Manifest{Version: version, Cache: cachePrefix + version, Files: files}
}

// CacheName возвращает имя кэша текущей версии.
func (m Manifest) CacheName() string {
	return fmt.Sprintf("%s%s", cachePrefix, m.Version)
}

// Stale возвращает кэши хранилища, которые нужно удалить при смене версии.
// Чужие кэши (без нашего префикса) не трогаются.
func (m Manifest) Stale(existing []string) []string {
	current := m.CacheName()
	var out []string
	for _, name := range existing {
		if strings.HasPrefix(name, cachePrefix) && name != current {
			out = append(out, name)
		}
	}
	return out
}
