// Package resx reads and writes .resx override documents.
//
// A document is a root element holding a small header block (resheader elements,
// optionally an inline schema) followed by data records:
//
//	<root>
//	  <resheader name="resmimetype"><value>text/microsoft-resx</value></resheader>
//	  ...
//	  <data name="greeting" xml:space="preserve"><value>Bonjour</value></data>
//	</root>
//
// Parsing keeps the original bytes of every child element, so rewriting a document
// reproduces headers, comments and untouched records verbatim. Only records changed
// through Set are re-rendered.
//
// Duplicate names are tolerated on read: Table and Lookup use the first occurrence
// and ignore later ones, and Set updates the first occurrence in place.
//
// WriteFile builds the whole document in memory and replaces the target with a single
// rename, so readers never observe a truncated file.
package resx
