// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
//
// The enumeration string values are externally visible: downstream UI and
// CSV exports key off the exact strings, so they must never change.
package types

// Quadrant classifies an item by popularity x margin
type Quadrant string

const (
	// QuadrantStar is popular and high-margin
	QuadrantStar Quadrant = "STAR"

	// QuadrantPlowhorse is popular but low-margin
	QuadrantPlowhorse Quadrant = "PLOWHORSE"

	// QuadrantPuzzle is unpopular but high-margin
	QuadrantPuzzle Quadrant = "PUZZLE"

	// QuadrantDog is unpopular and low-margin
	QuadrantDog Quadrant = "DOG"
)

// String returns the string representation of the quadrant
func (q Quadrant) String() string {
	return string(q)
}

// IsValid checks if the quadrant is a known quadrant
func (q Quadrant) IsValid() bool {
	switch q {
	case QuadrantStar, QuadrantPlowhorse, QuadrantPuzzle, QuadrantDog:
		return true
	default:
		return false
	}
}

// Action is a recommended menu action for an item
type Action string

const (
	// ActionKeep leaves the item as-is
	ActionKeep Action = "KEEP"

	// ActionPromote increases the item's visibility
	ActionPromote Action = "PROMOTE"

	// ActionReprice suggests a guardrailed price change
	ActionReprice Action = "REPRICE"

	// ActionReposition moves the item on the menu for better placement
	ActionReposition Action = "REPOSITION"

	// ActionReworkCost targets the item's ingredient cost
	ActionReworkCost Action = "REWORK_COST"

	// ActionRemove removes the item from the menu
	ActionRemove Action = "REMOVE"

	// ActionKeepAnchor keeps an owner-designated staple regardless of metrics
	ActionKeepAnchor Action = "KEEP_ANCHOR"
)

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// IsValid checks if the action is a known action
func (a Action) IsValid() bool {
	switch a {
	case ActionKeep, ActionPromote, ActionReprice, ActionReposition,
		ActionReworkCost, ActionRemove, ActionKeepAnchor:
		return true
	default:
		return false
	}
}

// Confidence is the statistical trust level in a recommendation,
// driven by sales volume
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// String returns the string representation of the confidence level
func (c Confidence) String() string {
	return string(c)
}

// Rank returns an ordinal for monotonicity comparisons (LOW < MEDIUM < HIGH)
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// CostSource is the provenance of an item's unit food cost
type CostSource string

const (
	// CostSourceManual is an owner-entered cost
	CostSourceManual CostSource = "MANUAL"

	// CostSourceMarginEdge is a cost from the external ingredient-costing system
	CostSourceMarginEdge CostSource = "MARGINEDGE"

	// CostSourceEstimate is a statistical fallback (30% of average price)
	CostSourceEstimate CostSource = "ESTIMATE"
)

// String returns the string representation of the cost source
func (s CostSource) String() string {
	return string(s)
}

// CoverageBadge grades reconciliation coverage
type CoverageBadge string

const (
	// BadgeGood means at least 90% of POS items matched external cost data
	BadgeGood CoverageBadge = "GOOD"

	// BadgeMixed means 50-90% coverage
	BadgeMixed CoverageBadge = "MIXED"

	// BadgeReview means under 50% coverage; requires acknowledgment
	BadgeReview CoverageBadge = "REVIEW"
)

// String returns the string representation of the badge
func (b CoverageBadge) String() string {
	return string(b)
}

// Guardrail identifies which ceiling bound a price suggestion
type Guardrail string

const (
	// GuardrailTargetGap means the gap-to-target increase fit inside all caps
	GuardrailTargetGap Guardrail = "TARGET_GAP"

	// GuardrailPercentCap means the percentage ceiling was the tightest
	GuardrailPercentCap Guardrail = "PERCENT_CAP"

	// GuardrailAbsoluteCap means the absolute dollar ceiling was the tightest
	GuardrailAbsoluteCap Guardrail = "ABSOLUTE_CAP"

	// GuardrailCategoryCeiling means the category 85th-percentile price bound
	GuardrailCategoryCeiling Guardrail = "CATEGORY_CEILING"
)

// String returns the string representation of the guardrail
func (g Guardrail) String() string {
	return string(g)
}
