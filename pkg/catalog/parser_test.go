package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/catalog"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()

	p := catalog.NewJSONParser()
	assert.True(t, p.SupportsFileExtension(".JSON"))
	assert.False(t, p.SupportsFileExtension("yaml"))

	got, err := p.Parse([]byte(`{
		"a": "1",
		"nested": {"b": "2", "deep": {"c": "3"}},
		"n": 4.5,
		"flag": true,
		"skip": null,
		"a": "dup"
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"a": "1", "nested.b": "2", "nested.deep.c": "3", "n": "4.5", "flag": "true",
	}, got)

	got, err = p.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = p.Parse([]byte(`["a"]`))
	assert.ErrorIs(t, err, catalog.ErrInvalidStructure)

	_, err = p.Parse([]byte(`{"list": ["a"]}`))
	assert.ErrorIs(t, err, catalog.ErrInvalidStructure)

	_, err = p.Parse([]byte(`{"a": `))
	assert.ErrorIs(t, err, catalog.ErrFailedToParseJSON)
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := catalog.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension("yml"))
	assert.True(t, p.SupportsFileExtension(".yaml"))

	got, err := p.Parse([]byte(`
base: &base
  ok: "OK"
buttons: *base
title: Hello
empty: ~
count: 3
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"base.ok": "OK", "buttons.ok": "OK", "title": "Hello", "count": "3",
	}, got)

	got, err = p.Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = p.Parse([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, catalog.ErrInvalidStructure)

	_, err = p.Parse([]byte("list:\n  - a\n"))
	assert.ErrorIs(t, err, catalog.ErrInvalidStructure)

	_, err = p.Parse([]byte("a: [unclosed"))
	assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
}

func TestResxParser(t *testing.T) {
	t.Parallel()

	p := catalog.NewResxParser()
	assert.True(t, p.SupportsFileExtension("resx"))

	got, err := p.Parse([]byte(`<root><data name="a"><value>1</value></data><data name="a"><value>2</value></data></root>`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, got)

	_, err = p.Parse([]byte(`<root>`))
	assert.ErrorIs(t, err, catalog.ErrFailedToParseResx)
}
