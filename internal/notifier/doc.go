// Package notifier provides publishing interfaces and implementations for
// round announcements.
//
// The notifier package posts a single formatted announcement to a channel:
// the Facebook Page feed via the Graph API, Twitter, or stdout for dry runs.
// Credentials are always supplied by the caller at construction time; no
// implementation reads secrets itself. Publishing is one-shot with no retry;
// a failed post surfaces as an error and the run aborts.
package notifier
