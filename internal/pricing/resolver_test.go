package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ezpickup-backend/internal/apperr"
	"ezpickup-backend/internal/model"
)

// fakeCatalog is an in-memory CatalogReader.
type fakeCatalog struct {
	models     map[string]model.Model
	conditions map[string]model.Condition
	rules      []model.PricingRule
}

func (f *fakeCatalog) GetModelWithAncestry(_ context.Context, id string) (model.Model, error) {
	m, ok := f.models[id]
	if !ok {
		return model.Model{}, apperr.ErrNotFound
	}
	return m, nil
}

func (f *fakeCatalog) GetCondition(_ context.Context, id string) (model.Condition, error) {
	c, ok := f.conditions[id]
	if !ok {
		return model.Condition{}, apperr.ErrNotFound
	}
	return c, nil
}

func (f *fakeCatalog) ListMatchingPricingRules(_ context.Context, _ model.Model) ([]model.PricingRule, error) {
	return f.rules, nil
}

func strPtr(s string) *string { return &s }

// testModel builds a model with a full ancestry chain.
func testModel() model.Model {
	return model.Model{
		ID:      "model-1",
		BrandID: "brand-1",
		Brand: model.Brand{
			ID:       "brand-1",
			DeviceID: "device-1",
			Device: model.Device{
				ID:         "device-1",
				CategoryID: "category-1",
				Category:   model.Category{ID: "category-1"},
			},
		},
	}
}

func newFakeCatalog(rules ...model.PricingRule) *fakeCatalog {
	return &fakeCatalog{
		models: map[string]model.Model{"model-1": testModel()},
		conditions: map[string]model.Condition{
			"excellent": {ID: "excellent", Multiplier: 1.0},
			"good":      {ID: "good", Multiplier: 0.8},
			"fair":      {ID: "fair", Multiplier: 0.6},
		},
		rules: rules,
	}
}

func TestQuote_SpecificityOrder(t *testing.T) {
	testCases := []struct {
		name              string
		rules             []model.PricingRule
		expectedBasePrice int64
	}{
		{
			name: "model rule beats category rule and global default",
			rules: []model.PricingRule{
				{ID: "r-global", BasePrice: 1000},
				{ID: "r-category", CategoryID: strPtr("category-1"), BasePrice: 1000},
				{ID: "r-model", ModelID: strPtr("model-1"), BasePrice: 85000},
			},
			expectedBasePrice: 85000,
		},
		{
			name: "brand rule beats device rule",
			rules: []model.PricingRule{
				{ID: "r-device", DeviceID: strPtr("device-1"), BasePrice: 20000},
				{ID: "r-brand", BrandID: strPtr("brand-1"), BasePrice: 30000},
			},
			expectedBasePrice: 30000,
		},
		{
			name: "device rule beats category rule",
			rules: []model.PricingRule{
				{ID: "r-category", CategoryID: strPtr("category-1"), BasePrice: 5000},
				{ID: "r-device", DeviceID: strPtr("device-1"), BasePrice: 20000},
			},
			expectedBasePrice: 20000,
		},
		{
			name: "global default applies when nothing else matches",
			rules: []model.PricingRule{
				{ID: "r-global", BasePrice: 1000},
				{ID: "r-other-model", ModelID: strPtr("some-other-model"), BasePrice: 99999},
			},
			expectedBasePrice: 1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(newFakeCatalog(tc.rules...), Config{})
			quote, err := r.Quote(context.Background(), "model-1", "excellent")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBasePrice, quote.BasePrice)
			assert.Equal(t, tc.expectedBasePrice, quote.EstimatedPrice)
		})
	}
}

func TestQuote_EqualSpecificityTieBreak(t *testing.T) {
	// Two model-scoped rules is a data anomaly; the smallest rule ID must
	// win, regardless of slice order.
	rules := []model.PricingRule{
		{ID: "rule-b", ModelID: strPtr("model-1"), BasePrice: 70000},
		{ID: "rule-a", ModelID: strPtr("model-1"), BasePrice: 60000},
	}

	r := NewResolver(newFakeCatalog(rules...), Config{})
	quote, err := r.Quote(context.Background(), "model-1", "excellent")
	require.NoError(t, err)
	assert.Equal(t, int64(60000), quote.BasePrice)
}

func TestQuote_MultiplierRounding(t *testing.T) {
	testCases := []struct {
		name        string
		basePrice   int64
		conditionID string
		expected    int64
	}{
		{name: "multiplier 0.8", basePrice: 75000, conditionID: "good", expected: 60000},
		{name: "multiplier 0.6", basePrice: 1000, conditionID: "fair", expected: 600},
		{name: "rounds to nearest unit", basePrice: 1229, conditionID: "fair", expected: 737},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := newFakeCatalog(model.PricingRule{ID: "r", ModelID: strPtr("model-1"), BasePrice: tc.basePrice})
			r := NewResolver(catalog, Config{})
			quote, err := r.Quote(context.Background(), "model-1", tc.conditionID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, quote.EstimatedPrice)
			assert.Equal(t, tc.basePrice, quote.BasePrice)
		})
	}
}

func TestQuote_RoundHalfUp(t *testing.T) {
	catalog := newFakeCatalog(model.PricingRule{ID: "r", ModelID: strPtr("model-1"), BasePrice: 5})
	catalog.conditions["half"] = model.Condition{ID: "half", Multiplier: 0.5}

	r := NewResolver(catalog, Config{})
	quote, err := r.Quote(context.Background(), "model-1", "half")
	require.NoError(t, err)
	// 5 * 0.5 = 2.5 rounds up, not to even.
	assert.Equal(t, int64(3), quote.EstimatedPrice)
}

func TestQuote_FallbackWhenNoRules(t *testing.T) {
	r := NewResolver(newFakeCatalog(), Config{})
	quote, err := r.Quote(context.Background(), "model-1", "fair")
	require.NoError(t, err)
	assert.Equal(t, DefaultFallbackBasePrice, quote.BasePrice)
	assert.Equal(t, int64(600), quote.EstimatedPrice)
	assert.Equal(t, 0.6, quote.ConditionMultiplier)
}

func TestQuote_ConfiguredFallback(t *testing.T) {
	r := NewResolver(newFakeCatalog(), Config{FallbackBasePrice: 2500})
	quote, err := r.Quote(context.Background(), "model-1", "excellent")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), quote.EstimatedPrice)
}

func TestQuote_ClampsToMinimumOne(t *testing.T) {
	catalog := newFakeCatalog(model.PricingRule{ID: "r", ModelID: strPtr("model-1"), BasePrice: 1})
	catalog.conditions["scrap"] = model.Condition{ID: "scrap", Multiplier: 0.1}

	r := NewResolver(catalog, Config{})
	quote, err := r.Quote(context.Background(), "model-1", "scrap")
	require.NoError(t, err)
	assert.Equal(t, int64(1), quote.EstimatedPrice)
}

func TestQuote_NotFound(t *testing.T) {
	r := NewResolver(newFakeCatalog(), Config{})

	_, err := r.Quote(context.Background(), "no-such-model", "excellent")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = r.Quote(context.Background(), "model-1", "no-such-condition")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuote_SkipsMalformedRules(t *testing.T) {
	// A rule claiming two scopes is skipped, not selected.
	rules := []model.PricingRule{
		{ID: "r-bad", ModelID: strPtr("model-1"), BrandID: strPtr("brand-1"), BasePrice: 99999},
		{ID: "r-global", BasePrice: 1000},
	}

	r := NewResolver(newFakeCatalog(rules...), Config{})
	quote, err := r.Quote(context.Background(), "model-1", "excellent")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), quote.BasePrice)
}

func TestScopeOf(t *testing.T) {
	scope, err := ScopeOf(model.PricingRule{ID: "r", ModelID: strPtr("m1")})
	require.NoError(t, err)
	assert.Equal(t, Scope{Level: ScopeModel, RefID: "m1"}, scope)

	scope, err = ScopeOf(model.PricingRule{ID: "r"})
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, scope.Level)

	_, err = ScopeOf(model.PricingRule{ID: "r", ModelID: strPtr("m1"), CategoryID: strPtr("c1")})
	assert.Error(t, err)
}
