// Package sink persists accumulated match records to a tabular file.
//
// Every flush rewrites the whole file from the full accumulated sequence, so
// the output is always a complete snapshot of the relevant conferences found
// so far and never contains a partial row. CSV is the default format; an
// XLSX sink covers spreadsheet consumers.
package sink
