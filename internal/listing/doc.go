// Package listing parses the prizes-remaining page into games.
//
// The page is not a clean data table: each game is its own table with
// a header row linking to the game's detail page, followed by one row
// per prize tier. Decorative tables, duplicate game blocks, and rows
// that are not tier data all appear in the wild and are tolerated.
package listing
