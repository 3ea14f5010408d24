// Package fetch provides the HTTP client used for all page retrieval.
//
// Every request carries a fixed browser-like User-Agent and Accept
// header set and is bounded by a per-request timeout. Transport errors
// and non-2xx responses are retried up to three attempts with a
// constant wait between them; there is no exponential backoff or
// circuit breaking, deliberately.
package fetch
