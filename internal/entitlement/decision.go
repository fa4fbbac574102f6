package entitlement

import "github.com/parrishadam/thebridgeworld-sub002/internal/model"

// Decision is the paywall outcome for one (caller, article) pair.
// Denied reads map to exactly one of three prompts.
type Decision string

const (
	DecisionAllow          Decision = "allow"
	DecisionSignIn         Decision = "sign_in"
	DecisionUpgradePaid    Decision = "upgrade_paid"
	DecisionUpgradePremium Decision = "upgrade_premium"
)

// Allowed reports whether the decision grants access to the body.
func (d Decision) Allowed() bool {
	return d == DecisionAllow
}

// CanRead decides whether the caller may read the article body.
// Admins and the article's own author always pass regardless of tier.
// reader is nil for anonymous callers, who satisfy only free content.
func CanRead(reader *model.Profile, article *model.Article) Decision {
	if reader != nil && (reader.IsAdmin || reader.ID == article.AuthorID) {
		return DecisionAllow
	}

	required := article.AccessTier
	if !required.Valid() {
		required = model.TierFree
	}

	if reader == nil {
		if required == model.TierFree {
			return DecisionAllow
		}
		return DecisionSignIn
	}

	if reader.Tier.Satisfies(required) {
		return DecisionAllow
	}
	if required == model.TierPremium {
		return DecisionUpgradePremium
	}
	return DecisionUpgradePaid
}
