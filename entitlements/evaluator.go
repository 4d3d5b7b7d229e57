// SPDX-License-Identifier: GPL-3.0-only

// Package entitlements holds the plan limit checks: resolving the active
// subscription, counting usage, and deciding whether an action is still
// within the plan's quota.
package entitlements

import "equilog-server/models"

type Decision struct {
	CanProceed bool
	Unlimited  bool
	Remaining  int
}

// Evaluate compares usage against a plan limit. A limit of
// models.UnlimitedLimit always allows. Used may already exceed the limit
// when a previous check raced with an insert; remaining is clamped to zero
// in that case.
func Evaluate(used, limit int) Decision {
	if limit == models.UnlimitedLimit {
		return Decision{CanProceed: true, Unlimited: true}
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		CanProceed: used < limit,
		Remaining:  remaining,
	}
}

// RemainingValue renders a decision's remaining quota for API responses,
// where unlimited plans report the string "unlimited" instead of a number.
func (d Decision) RemainingValue() any {
	if d.Unlimited {
		return "unlimited"
	}
	return d.Remaining
}

// LimitValue renders a raw plan limit the same way.
func LimitValue(limit int) any {
	if limit == models.UnlimitedLimit {
		return "unlimited"
	}
	return limit
}
