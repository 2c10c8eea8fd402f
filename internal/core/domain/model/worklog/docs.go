// Package worklog provides the ProcessingLogEntry entity: per-item, per-station
// time-tracking records driven by barcode scans. Entries open when a scan arrives
// and close lazily when the next scan for the same item arrives, even at a
// different station.
package worklog
