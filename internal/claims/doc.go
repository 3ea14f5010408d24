// Package claims identifies games in their claims period.
//
// After a scratch-off game stops selling, winners can still redeem
// tickets until the claim deadline. During that window the published
// prizes-remaining numbers keep moving while no new tickets are sold,
// so the data is unreliable and those games are excluded from ranking.
// The set is computed from the "games ending" listing page.
package claims
