// Package editor lets operators change individual resource values without a rebuild.
//
// Edits are written to per-culture override files next to the base definition:
// Views.Home edited in fr-FR lands in <root>/Views/Home.fr-FR.resx, the file the
// localizer reads before its compiled fallback.
//
// LoadForEdit and Save implement the merge on explicit file paths. Save keeps every
// byte of an existing override file that the edits do not touch, appends records for
// new names and writes the result atomically. Nothing is written when the edits change
// nothing or the document would hold no records.
//
// Editor binds the merge to a resources directory and to the request culture, and
// Router serves it as a small JSON API. After each write the optional watch.Notifier
// is told the override path; pass a watch.Manual shared with the localizer so the
// next lookup in this process sees the change, or a watch.RedisWatcher to reach
// every replica.
package editor
