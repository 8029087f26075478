// Package config defines settings used by the report-card utility and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the gradebook data file path and the log level.
// The data file path can also be overridden via the REPORT_CARD_DATA_FILE
// environment variable, with optional .env file support.
package config
