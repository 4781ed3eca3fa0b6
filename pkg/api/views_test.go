package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
)

func pricedEngagement(status entengagement.Status) *ent.Engagement {
	return &ent.Engagement{
		ID:                    "eng-1",
		Status:                status,
		Tier:                  entengagement.TierTier1,
		BuyerID:               "buyer-9",
		WarehouseID:           "wh-1",
		BuyerNeedID:           "need-1",
		Sqft:                  10000,
		SupplierRate:          5.00,
		BuyerRate:             6.36,
		MonthlySupplierPayout: 50000,
		MonthlyBuyerTotal:     63600,
	}
}

func fieldsOf(t *testing.T, v EngagementView) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestEngagementView_BuyerNeverSeesSupplierEconomics(t *testing.T) {
	e := pricedEngagement(entengagement.StatusBuyerAccepted)
	m := fieldsOf(t, engagementView(e, Identity{UserID: "buyer-9", Role: RoleBuyer}))

	assert.NotContains(t, m, "supplier_rate")
	assert.NotContains(t, m, "monthly_supplier_payout")
	assert.NotContains(t, m, "monthly_wex_amount")
	assert.Equal(t, 6.36, m["buyer_rate"])
	assert.Equal(t, 63600.0, m["monthly_buyer_total"])
}

func TestEngagementView_SupplierNeverSeesBuyerEconomics(t *testing.T) {
	e := pricedEngagement(entengagement.StatusBuyerAccepted)
	m := fieldsOf(t, engagementView(e, Identity{UserID: "sup-1", Role: RoleSupplier}))

	assert.NotContains(t, m, "buyer_rate")
	assert.NotContains(t, m, "monthly_buyer_total")
	assert.NotContains(t, m, "monthly_wex_amount")
	assert.Equal(t, 5.00, m["supplier_rate"])
	assert.Equal(t, 50000.0, m["monthly_supplier_payout"])
}

func TestEngagementView_BuyerIdentityHiddenBeforeAccount(t *testing.T) {
	before := fieldsOf(t, engagementView(
		pricedEngagement(entengagement.StatusBuyerAccepted),
		Identity{Role: RoleSupplier}))
	assert.NotContains(t, before, "buyer_id")

	after := fieldsOf(t, engagementView(
		pricedEngagement(entengagement.StatusAccountCreated),
		Identity{Role: RoleSupplier}))
	assert.Equal(t, "buyer-9", after["buyer_id"])
}

func TestEngagementView_AdminSeesEverything(t *testing.T) {
	e := pricedEngagement(entengagement.StatusActive)
	m := fieldsOf(t, engagementView(e, Identity{Role: RoleAdmin}))

	assert.Equal(t, 6.36, m["buyer_rate"])
	assert.Equal(t, 5.00, m["supplier_rate"])
	assert.Equal(t, 63600.0-50000.0, m["monthly_wex_amount"])
	assert.Contains(t, m, "admin_flagged")
}

func TestEngagementView_UnpricedOmitsEconomics(t *testing.T) {
	e := pricedEngagement(entengagement.StatusMatched)
	e.BuyerRate = 0
	e.SupplierRate = 0
	m := fieldsOf(t, engagementView(e, Identity{Role: RoleAdmin}))

	assert.NotContains(t, m, "buyer_rate")
	assert.NotContains(t, m, "supplier_rate")
}

func TestEngagementView_AllowedActions(t *testing.T) {
	e := pricedEngagement(entengagement.StatusTourRequested)

	supplier := engagementView(e, Identity{Role: RoleSupplier})
	assert.ElementsMatch(t, []string{
		string(entengagement.StatusTourConfirmed),
		string(entengagement.StatusDeclinedBySupplier),
	}, supplier.AllowedActions)

	buyer := engagementView(e, Identity{UserID: "buyer-9", Role: RoleBuyer})
	assert.Empty(t, buyer.AllowedActions)
}

func TestRoundUpCent(t *testing.T) {
	assert.Equal(t, 6.36, roundUpCent(6.36))
	assert.Equal(t, 6.37, roundUpCent(6.3601))
	assert.Equal(t, 5.09, roundUpCent(5.0801))
}
