// Package pricing resolves a (model, condition) pair to an estimated price
// by selecting the most specific matching pricing rule in the
// category > device > brand > model hierarchy.
package pricing

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"ezpickup-backend/internal/model"
)

// DefaultFallbackBasePrice is used when no rule matches at any scope,
// including the global default. A quote never hard-fails for lack of rules.
const DefaultFallbackBasePrice int64 = 1000

// minEstimatedPrice is the floor applied after the condition multiplier.
const minEstimatedPrice int64 = 1

// ScopeLevel ranks rule scopes from most to least specific.
type ScopeLevel int

const (
	ScopeModel ScopeLevel = iota
	ScopeBrand
	ScopeDevice
	ScopeCategory
	ScopeGlobal
)

func (l ScopeLevel) String() string {
	switch l {
	case ScopeModel:
		return "model"
	case ScopeBrand:
		return "brand"
	case ScopeDevice:
		return "device"
	case ScopeCategory:
		return "category"
	case ScopeGlobal:
		return "global"
	}
	return "unknown"
}

// Scope is the tagged form of a rule's target: exactly one hierarchy node,
// or the global default. RefID is empty for ScopeGlobal.
type Scope struct {
	Level ScopeLevel
	RefID string
}

// ScopeOf derives the Scope of a stored rule. Rows claiming more than one
// hierarchy level are malformed and rejected.
func ScopeOf(r model.PricingRule) (Scope, error) {
	var s Scope
	set := 0

	if r.ModelID != nil {
		s = Scope{Level: ScopeModel, RefID: *r.ModelID}
		set++
	}
	if r.BrandID != nil {
		s = Scope{Level: ScopeBrand, RefID: *r.BrandID}
		set++
	}
	if r.DeviceID != nil {
		s = Scope{Level: ScopeDevice, RefID: *r.DeviceID}
		set++
	}
	if r.CategoryID != nil {
		s = Scope{Level: ScopeCategory, RefID: *r.CategoryID}
		set++
	}

	switch set {
	case 0:
		return Scope{Level: ScopeGlobal}, nil
	case 1:
		return s, nil
	default:
		return Scope{}, fmt.Errorf("pricing rule %s claims %d scopes", r.ID, set)
	}
}

// CatalogReader is the subset of the store the resolver needs.
type CatalogReader interface {
	GetModelWithAncestry(ctx context.Context, id string) (model.Model, error)
	GetCondition(ctx context.Context, id string) (model.Condition, error)
	ListMatchingPricingRules(ctx context.Context, m model.Model) ([]model.PricingRule, error)
}

// Config holds the resolver's tunables.
type Config struct {
	FallbackBasePrice int64
}

// Quote is the transparent result of a price resolution.
type Quote struct {
	EstimatedPrice      int64   `json:"estimatedPrice"`
	BasePrice           int64   `json:"basePrice"`
	ConditionMultiplier float64 `json:"conditionMultiplier"`
}

// Resolver computes price quotes. It is a pure read path with no side
// effects.
//
// Specificity order, most to least specific: model > brand > device >
// category > global default. Among rules at the same level the smallest
// rule ID wins, so selection is deterministic regardless of query order.
type Resolver struct {
	store    CatalogReader
	fallback int64
}

// NewResolver creates a resolver backed by the given catalog reader.
func NewResolver(store CatalogReader, cfg Config) *Resolver {
	fallback := cfg.FallbackBasePrice
	if fallback <= 0 {
		fallback = DefaultFallbackBasePrice
	}
	return &Resolver{store: store, fallback: fallback}
}

// Quote resolves the estimated price for a model in a given condition.
// Returns apperr.ErrNotFound (via the store) if either entity is missing.
func (r *Resolver) Quote(ctx context.Context, modelID, conditionID string) (Quote, error) {
	m, err := r.store.GetModelWithAncestry(ctx, modelID)
	if err != nil {
		return Quote{}, fmt.Errorf("model lookup: %w", err)
	}

	cond, err := r.store.GetCondition(ctx, conditionID)
	if err != nil {
		return Quote{}, fmt.Errorf("condition lookup: %w", err)
	}

	rules, err := r.store.ListMatchingPricingRules(ctx, m)
	if err != nil {
		return Quote{}, fmt.Errorf("rule lookup: %w", err)
	}

	basePrice := r.fallback
	if rule, ok := selectRule(rules, m); ok {
		basePrice = rule.BasePrice
	}

	return Quote{
		EstimatedPrice:      applyMultiplier(basePrice, cond.Multiplier),
		BasePrice:           basePrice,
		ConditionMultiplier: cond.Multiplier,
	}, nil
}

// selectRule picks the single authoritative rule among all candidates.
func selectRule(rules []model.PricingRule, m model.Model) (model.PricingRule, bool) {
	type ranked struct {
		rule  model.PricingRule
		scope Scope
	}

	matched := make([]ranked, 0, len(rules))
	for _, rule := range rules {
		scope, err := ScopeOf(rule)
		if err != nil {
			log.Printf("skipping malformed pricing rule: %v", err)
			continue
		}
		if !scopeMatches(scope, m) {
			continue
		}
		matched = append(matched, ranked{rule: rule, scope: scope})
	}

	if len(matched) == 0 {
		return model.PricingRule{}, false
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].scope.Level != matched[j].scope.Level {
			return matched[i].scope.Level < matched[j].scope.Level
		}
		return matched[i].rule.ID < matched[j].rule.ID
	})
	return matched[0].rule, true
}

// scopeMatches reports whether a scope applies to the model's ancestry.
// The store already filters candidates, but ranking must not trust the
// query to have done so.
func scopeMatches(s Scope, m model.Model) bool {
	switch s.Level {
	case ScopeModel:
		return s.RefID == m.ID
	case ScopeBrand:
		return s.RefID == m.BrandID
	case ScopeDevice:
		return s.RefID == m.Brand.DeviceID
	case ScopeCategory:
		return s.RefID == m.Brand.Device.CategoryID
	case ScopeGlobal:
		return true
	}
	return false
}

// applyMultiplier computes round-half-up(basePrice * multiplier), clamped
// to a minimum of one currency unit.
func applyMultiplier(basePrice int64, multiplier float64) int64 {
	price := decimal.NewFromInt(basePrice).
		Mul(decimal.NewFromFloat(multiplier)).
		Round(0).
		IntPart()
	if price < minEstimatedPrice {
		return minEstimatedPrice
	}
	return price
}
