// Package palabras looks up Spanish words on Wiktionary and extracts their
// dictionary senses: part of speech, headword forms, usage labels and glosses.
//
// This package contains domain types, interfaces and the entry extractor,
// following Ben Johnson's Standard Package Layout. The extractor is written
// against the Node interface only; implementations of Node, Fetcher and the
// other interfaces live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, chi/).
package palabras

// DefaultLanguage is the language section extracted when none is given.
const DefaultLanguage = "Spanish"
