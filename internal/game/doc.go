// Package game defines the scratch-off domain model: games, prize tiers,
// and the differential statistic used to rank them.
//
// A game's differential is the percent of top-tier prizes remaining minus
// the percent of bottom-tier prizes remaining. A positive differential
// means proportionally more of the big prizes are still unclaimed.
package game
