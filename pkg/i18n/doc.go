// Package i18n models cultures and determines the culture of an HTTP request.
//
// A Culture is a BCP 47 name with canonical casing ("zh-CN") and a derivable parent.
// Deprecated codes such as "iw" are kept as written. Parents are obtained by
// dropping the last subtag, so every culture forms a chain ending at the invariant
// culture:
//
//	c := i18n.MustParse("zh-Hans-CN")
//	c.Chain() // zh-Hans-CN, zh-Hans, zh, invariant
//
// # Request culture
//
// Middleware runs an ordered chain of strategies and stores the first match in the
// request context. The URL strategy recognises a supported culture in the first path
// segment and strips it so routers see the culture-free path:
//
//	mw, err := i18n.Middleware(i18n.Options{
//		Supported: []i18n.Culture{i18n.MustParse("zh-CN"), i18n.MustParse("fr-FR")},
//	})
//	if err != nil {
//		return err
//	}
//	r := chi.NewRouter()
//	r.Use(mw)
//
// Inside handlers the culture is read with FromContext, and LocalizedPath builds links
// that keep the culture prefix for non-default cultures.
package i18n
