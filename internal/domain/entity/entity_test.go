package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Consistent(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: "1", Price: decimal.RequireFromString("49.99"), Quantity: 2},
			{ID: "2", Price: decimal.RequireFromString("10.00"), Quantity: 1},
		},
		Subtotal: decimal.RequireFromString("109.98"),
		Shipping: decimal.RequireFromString("5.00"),
		Tax:      decimal.RequireFromString("8.80"),
		Discount: decimal.RequireFromString("10.00"),
		Total:    decimal.RequireFromString("113.78"),
	}

	assert.True(t, cart.Consistent())
	assert.Equal(t, 3, cart.ItemCount())
	assert.True(t, cart.Items[0].LineTotal().Equal(decimal.RequireFromString("99.98")))

	cart.Total = decimal.RequireFromString("100")
	assert.False(t, cart.Consistent())
}

func TestOutfit_RecomputeTotal(t *testing.T) {
	outfit := &Outfit{
		Items: []OutfitItem{
			{Price: decimal.RequireFromString("19.90")},
			{Price: decimal.RequireFromString("80.10")},
		},
	}

	total := outfit.RecomputeTotal()

	assert.True(t, total.Equal(decimal.NewFromInt(100)))
	assert.True(t, outfit.TotalPrice.Equal(total))
}

func TestCategory_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"known category", `{"category":"shoes"}`, CategoryShoes, false},
		{"empty category is unset", `{"category":""}`, "", false},
		{"unknown category rejected", `{"category":"hat"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item WardrobeItem
			err := json.Unmarshal([]byte(tt.input), &item)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Category)
		})
	}
}

func TestRole_Parse(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	role, err = ParseRole("stylist")
	require.NoError(t, err)
	assert.Equal(t, RoleStylist, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)

	assert.True(t, Roles{RoleUser, RoleAdmin}.Contains(RoleAdmin))
}

func TestAuthStatus_MarshalText(t *testing.T) {
	data, err := json.Marshal(struct {
		Status AuthStatus `json:"status"`
	}{Status: AuthStatusExpired})

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"expired"}`, string(data))
}

func TestPagination_Normalize(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: DefaultPageSize}, Pagination{}.Normalize())
	assert.Equal(t, Pagination{Page: 3, Limit: 5}, Pagination{Page: 3, Limit: 5}.Normalize())
}
