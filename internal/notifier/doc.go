// Package notifier provides announcement interfaces and implementations for
// milestone celebrants.
//
// The notifier package supports posting milestone congratulations to various
// platforms including Twitter and Telegram. It handles OAuth authentication,
// rate limiting, and message formatting for different announcement channels.
package notifier
