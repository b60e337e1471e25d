package catalog

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/resx"
)

// ResxParser reads .resx documents.
type ResxParser struct{}

func NewResxParser() *ResxParser { return &ResxParser{} }

// Parse returns the data records of the document.
func (p *ResxParser) Parse(content []byte) (map[string]string, error) {
	doc, err := resx.Parse(content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseResx, err)
	}
	return doc.Table(), nil
}

func (p *ResxParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "resx")
}
