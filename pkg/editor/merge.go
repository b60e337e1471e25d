package editor

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/resx"
)

// Entry is one editable value. OldValue is the value the operator saw when the
// page was loaded; NewValue is what they submitted.
type Entry struct {
	Name     string `json:"name"`
	OldValue string `json:"old"`
	NewValue string `json:"new"`
}

// LoadForEdit lists the records of the base file that have a non-blank value.
// The first record of a name wins. OldValue and NewValue are both the base value.
func LoadForEdit(basePath string) ([]Entry, error) {
	doc, err := readBase(basePath)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var entries []Entry
	for _, rec := range doc.Records() {
		if strings.TrimSpace(rec.Value) == "" {
			continue
		}
		if _, dup := seen[rec.Name]; dup {
			continue
		}
		seen[rec.Name] = struct{}{}
		entries = append(entries, Entry{Name: rec.Name, OldValue: rec.Value, NewValue: rec.Value})
	}
	return entries, nil
}

// Save merges edits into the override file at overridePath, creating it from the
// standard header block when it does not exist. Only edits whose NewValue differs
// from OldValue touch the document; later edits of the same name win. The file is
// written only when the merge changed something and the document holds at least
// one record. The returned entries carry NewValue as their new baseline.
func Save(basePath, overridePath string, edits []Entry) ([]Entry, error) {
	_, err := save(basePath, overridePath, edits)
	if err != nil {
		return nil, err
	}
	return baseline(edits), nil
}

// save reports whether the override file was written.
func save(basePath, overridePath string, edits []Entry) (bool, error) {
	for _, e := range edits {
		if strings.TrimSpace(e.Name) == "" {
			return false, errors.Join(ErrInvalidArgument, errors.New("entry name is required"))
		}
	}
	if _, err := readBase(basePath); err != nil {
		return false, err
	}

	doc, err := resx.ReadFile(overridePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc = resx.NewDocument()
	case err != nil:
		return false, errors.Join(ErrFailedToLoad, err)
	}

	for _, e := range edits {
		if e.NewValue == e.OldValue {
			continue
		}
		if err := doc.Set(e.Name, e.NewValue); err != nil {
			return false, errors.Join(ErrInvalidArgument, err)
		}
	}

	if !doc.Changed() || doc.Len() == 0 {
		return false, nil
	}
	if err := resx.WriteFile(overridePath, doc); err != nil {
		return false, errors.Join(ErrFailedToSave, err)
	}
	return true, nil
}

func readBase(basePath string) (*resx.Document, error) {
	doc, err := resx.ReadFile(basePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Join(ErrBaseNotFound, err)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return doc, nil
}

func baseline(edits []Entry) []Entry {
	out := make([]Entry, len(edits))
	for i, e := range edits {
		out[i] = Entry{Name: e.Name, OldValue: e.NewValue, NewValue: e.NewValue}
	}
	return out
}
