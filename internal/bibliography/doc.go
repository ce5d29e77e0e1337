// Package bibliography loads reference databases and renders in-text citations.
//
// A Library is read once at startup from either a BibTeX file (.bib) or a
// CSL item list in JSON or YAML (.json, .yaml, .yml) and stays read-only for
// the rest of the run. A Style turns one entry plus an optional page locator
// into citation text through a text/template; an APA-like style is built in.
//
// Broken entries never abort a load: they are skipped and logged. Only an
// unreadable or syntactically invalid file is fatal.
package bibliography
