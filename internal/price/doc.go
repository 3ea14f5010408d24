// Package price recovers a game's ticket price from its detail page.
//
// The listing page does not carry prices, so each surviving game costs
// one extra fetch. A pacing delay runs before every detail request to
// avoid hammering the origin. Extraction is best effort: a primary
// pattern over the whole page text, then a scan of block-level nodes
// mentioning "Ticket Price". A price of 0 means extraction failed and
// the game is dropped from the report.
package price
