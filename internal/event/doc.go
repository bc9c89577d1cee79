// Package event provides types and selection logic for TFK Seriespill rounds.
//
// The event package holds the round model produced by the Metrix scraper and
// the next-day selection used to decide which round to announce. Selection is
// pure: the reference clock and timezone are supplied by the caller, never
// read from the environment.
package event
