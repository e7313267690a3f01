// Package ingest reads part list spreadsheets into a uniform string table.
//
// CSV and Excel (.xlsx/.xlsm) files are supported; Open dispatches on the
// file extension. The first row is always the header row. Both readers
// produce the same shape, so schema resolution and allocation never care
// where the data came from.
package ingest
