// Package domain models office temperature log data.
//
// # Data Source
//
// Readings come from a CSV export of the office sensor loggers, one row per
// observation. The required columns are:
//
//	timestamp      local sensor time in "YYYY/MM/DD HH:MM" format
//	location       free-text room or sensor label, e.g. "Server Room"
//	temperature_c  degrees Celsius, possibly blank or non-numeric
//
// Any additional columns are ignored. A load fails outright when a required
// column is absent or a timestamp does not parse; a temperature cell that
// does not parse as a number is recorded as missing instead. Loggers write
// blanks for dropped samples and occasionally sentinel strings like "N/A"
// or "ERROR", so per-cell failures are routine and must not abort a run.
//
// # Anomaly Detection
//
// A reading is anomalous when its temperature deviates from its location's
// mean by more than threshold sample standard deviations. Locations with
// fewer than two non-missing readings, or with zero variance, have no
// defined deviation and are skipped entirely. Readings with a missing
// temperature are never flagged.
package domain
