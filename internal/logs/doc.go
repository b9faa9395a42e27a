// Package logs reads back the tail of the spinscan log file.
package logs
