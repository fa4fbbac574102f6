package model

// Tier is a subscription level. The three tiers are totally ordered:
// free < paid < premium.
type Tier string

const (
	TierFree    Tier = "free"
	TierPaid    Tier = "paid"
	TierPremium Tier = "premium"
)

var tierRank = map[Tier]int{
	TierFree:    0,
	TierPaid:    1,
	TierPremium: 2,
}

// ParseTier maps a raw string onto a Tier. Unknown or empty values
// default to free.
func ParseTier(s string) Tier {
	t := Tier(s)
	if !t.Valid() {
		return TierFree
	}
	return t
}

// Valid reports whether the tier is one of the three known values.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// Satisfies reports whether a subscriber at tier t meets the given
// required tier. Unknown tiers rank as free on both sides.
func (t Tier) Satisfies(required Tier) bool {
	return tierRank[t] >= tierRank[required]
}
