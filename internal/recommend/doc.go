// Package recommend selects the highlights of an assessment: the strongest
// pillars, the highest-impact failing criteria, and the action items that
// unblock the next maturity level.
package recommend
