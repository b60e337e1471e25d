// Package localizer resolves display strings by name and culture.
//
// A Resolver serves one logical resource path such as "Views.Home.Index". Each
// lookup walks three tiers:
//
//  1. the negative cache, holding names the fallback reported as having no
//     manifest and override files known to be absent;
//  2. the override table loaded from <root>/Views/Home/Index.<culture>.resx
//     (or the dotted spelling <root>/Views.Home.Index.<culture>.resx);
//  3. the compiled Fallback, typically a catalog.Catalog over an embed.FS.
//
// A name present in an override table always wins over the fallback. When no tier
// has the name the result echoes the name with Found set to false.
//
// Loaded tables live in a Cache shared by every resolver built on it. Before an
// override file is read, a one-shot watch.Subscription is armed on it; when the
// subscription fires, the table and the file tombstone are evicted together and
// the next lookup reloads the file. Watchers that cannot deliver callbacks leave
// entries in place until Cache.Invalidate or Cache.Purge is called.
//
// Typical wiring:
//
//	f, err := localizer.NewFactory(cat,
//		localizer.WithResourcesPath("resources"),
//		localizer.WithWatcher(fsWatcher),
//		localizer.WithLogger(log),
//	)
//	home, err := f.Create("Views.Home.Index")
//	title := home.Get(ctx, "Title") // culture from i18n.FromContext(ctx)
//	greet := home.Format(ctx, "Greeting", user.Name)
package localizer
