// Package report renders the ranked games into a single self-contained
// HTML document.
//
// The page has three views: the top ten games priced $10 and up, the
// top ten under $10 (both in primary differential order), and a "most
// top prizes remaining" table for games whose top prize is $5,000 or
// more. Styling is inlined; the only script is a per-row click handler
// opening the game's detail page.
package report
