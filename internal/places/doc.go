// Package places integrates the Geoapify Places API as the external venue
// source for the venues endpoint.
//
// The client degrades gracefully: without an API key every search is a no-op,
// and transient provider failures (500/502/503/504) are retried with
// exponential backoff before the caller treats the category as empty.
package places
