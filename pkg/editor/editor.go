package editor

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/resx"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

// idPattern accepts dotted logical paths such as "Views.Home.Index".
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// Editor edits override files below one resources directory. It does not lock
// files; concurrent saves of the same override must be serialised by the caller.
type Editor struct {
	root     string
	ext      string
	notifier watch.Notifier
	logger   *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithNotifier sets the notifier told about every written override file, so that
// caches in this and other processes drop their copy.
func WithNotifier(n watch.Notifier) Option {
	return func(e *Editor) { e.notifier = n }
}

// WithExtension sets the resource file extension, "resx" by default.
func WithExtension(ext string) Option {
	return func(e *Editor) {
		if ext = strings.TrimPrefix(ext, "."); ext != "" {
			e.ext = ext
		}
	}
}

// New returns an Editor for the resources below root.
func New(root string, opts ...Option) (*Editor, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.Join(ErrInvalidArgument, errors.New("resources root is required"))
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Join(ErrInvalidArgument, err)
	}

	e := &Editor{
		root:   abs,
		ext:    localizer.DefaultExtension,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("editor"))
	return e, nil
}

// Paths returns the base file and the override file for id in culture c.
func (e *Editor) Paths(id string, c i18n.Culture) (base, override string, err error) {
	if !idPattern.MatchString(id) {
		return "", "", ErrInvalidPath
	}
	base = localizer.OverridePath(e.root, id, i18n.Invariant, e.ext)
	override = localizer.OverridePath(e.root, id, c, e.ext)

	// the pattern already excludes separators and "..", this guards the joined result
	for _, p := range []string{base, override} {
		if rel, err := filepath.Rel(e.root, p); err != nil || strings.HasPrefix(rel, "..") {
			return "", "", ErrInvalidPath
		}
	}
	return base, override, nil
}

// Load returns the editable values of id for the culture in ctx: the base values,
// replaced by the override values already saved for that culture.
func (e *Editor) Load(ctx context.Context, id string) ([]Entry, error) {
	c := i18n.FromContext(ctx)
	base, override, err := e.Paths(id, c)
	if err != nil {
		return nil, err
	}

	entries, err := LoadForEdit(base)
	if err != nil {
		return nil, err
	}
	if c.IsInvariant() {
		return entries, nil
	}

	doc, err := resx.ReadFile(override)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return entries, nil
	case err != nil:
		e.logger.WarnContext(ctx, "ignoring unreadable override file", logger.Path(override), logger.Error(err))
		return entries, nil
	}

	table := doc.Table()
	for i := range entries {
		if v, ok := table[entries[i].Name]; ok {
			entries[i].OldValue, entries[i].NewValue = v, v
			delete(table, entries[i].Name)
		}
	}
	// names present only in the override keep document order
	for _, rec := range doc.Records() {
		if v, ok := table[rec.Name]; ok {
			entries = append(entries, Entry{Name: rec.Name, OldValue: v, NewValue: v})
			delete(table, rec.Name)
		}
	}
	return entries, nil
}

// Save merges edits into the override file of id for the culture in ctx.
// The invariant culture is rejected: its file is the base definition.
func (e *Editor) Save(ctx context.Context, id string, edits []Entry) ([]Entry, error) {
	c := i18n.FromContext(ctx)
	if c.IsInvariant() {
		return nil, errors.Join(ErrInvalidArgument, errors.New("a culture is required to save overrides"))
	}
	base, override, err := e.Paths(id, c)
	if err != nil {
		return nil, err
	}

	written, err := save(base, override, edits)
	if err != nil {
		return nil, err
	}
	if !written {
		e.logger.DebugContext(ctx, "override unchanged", logger.Resource(id), logger.Culture(c.Name()))
		return baseline(edits), nil
	}

	e.logger.InfoContext(ctx, "override saved",
		logger.Resource(id), logger.Culture(c.Name()), logger.Path(override))
	if e.notifier != nil {
		if err := e.notifier.Notify(ctx, override); err != nil {
			e.logger.WarnContext(ctx, "change notification failed", logger.Path(override), logger.Error(err))
		}
	}
	return baseline(edits), nil
}

// List returns the ids of every base file below the root, sorted.
// Override files (those with a culture suffix) are skipped.
func (e *Editor) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(e.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), "."+e.ext) {
			return nil
		}

		rel, err := filepath.Rel(e.root, path)
		if err != nil {
			return err
		}
		name := strings.ReplaceAll(filepath.ToSlash(rel[:len(rel)-len(e.ext)-1]), "/", ".")
		if _, _, isOverride := i18n.SplitCultureSuffix(name); isOverride {
			return nil
		}
		if idPattern.MatchString(name) {
			ids = append(ids, name)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	slices.Sort(ids)
	return ids, nil
}
