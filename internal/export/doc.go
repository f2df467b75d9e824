// Package export writes user-requested downloads (prospect CSV exports) into a
// local directory. It stands in for the browser download a web dashboard would
// trigger; nothing is read back on the next session.
package export
