// Package catalog provides the compiled resource tier for the localizer.
//
// A Catalog indexes resource files from an fs.FS, usually an embed.FS baked into
// the binary, and serves them through the localizer.Fallback interface:
//
//	//go:embed resources
//	var resources embed.FS
//
//	sub, _ := fs.Sub(resources, "resources")
//	cat, err := catalog.New(sub)
//	f, err := localizer.NewFactory(cat, localizer.WithResourcesPath("overrides"))
//
// Supported formats are .resx, .json and .yaml/.yml. JSON and YAML nest names with
// objects, flattened into dotted names. Within a file, and across files for the same
// path and culture, the first occurrence of a name wins.
//
// Lookups walk the culture chain (fr-CA, fr, invariant) and report
// localizer.ErrMissingManifest when no level of the chain has any resources.
package catalog
