package localizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/resx"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

// OverridePath returns the file the editor writes overrides for path and culture to:
// <root>/<a>/<b>.<culture>.<ext>. The invariant culture omits the culture segment.
func OverridePath(root, path string, c i18n.Culture, ext string) string {
	return filepath.Join(root, filepath.FromSlash(strings.ReplaceAll(path, ".", "/"))+suffix(c, ext))
}

// overrideCandidates lists the spellings tried when reading, in order:
// segment-separated first, then dot-separated.
func overrideCandidates(root, path string, c i18n.Culture, ext string) []string {
	slashed := OverridePath(root, path, c, ext)
	dotted := filepath.Join(root, path+suffix(c, ext))
	if slashed == dotted {
		return []string{slashed}
	}
	return []string{slashed, dotted}
}

func suffix(c i18n.Culture, ext string) string {
	if c.IsInvariant() {
		return "." + ext
	}
	return "." + c.Name() + "." + ext
}

// loadTable reads the override file for c into the cache. The canonical spelling
// is watched before any file is looked at, so a create or write that races the
// lookup still evicts the entry. It returns nil when no usable override exists.
func (r *Resolver) loadTable(c i18n.Culture, key cacheKey) map[string]string {
	candidates := overrideCandidates(r.root, r.path, c, r.ext)
	subs := []*watch.Subscription{r.watcher.Watch(candidates[0])}

	found := ""
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			found = p
			break
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("cannot stat override file", logger.Path(p), logger.Error(err))
		}
	}

	var table map[string]string
	if found != "" {
		if found != candidates[0] {
			subs = append(subs, r.watcher.Watch(found))
		}
		table = r.readTable(found, c)
	}
	return r.cache.store(key, table, subs...)
}

func (r *Resolver) readTable(path string, c i18n.Culture) map[string]string {
	doc, err := resx.ReadFile(path)
	if err != nil {
		r.logger.Warn("ignoring unreadable override file",
			logger.Path(path), logger.Culture(c.Name()), logger.Error(err))
		return nil
	}
	table := doc.Table()
	if len(table) == 0 {
		r.logger.Warn("ignoring override file without records",
			logger.Path(path), logger.Culture(c.Name()))
		return nil
	}
	r.logger.Debug("override file loaded",
		logger.Path(path), logger.Culture(c.Name()), "records", len(table))
	return table
}
