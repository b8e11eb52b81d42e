// Package countries provides the deterministic region directory backing the
// phone input's country select: one option per region known to the phone
// numbering metadata, labelled with its calling code and a localized display
// name.
//
// The package also exposes search helpers and a small net/http handler that
// returns JSON options, so client-side selects can filter the directory
// without shipping the full table.
package countries
