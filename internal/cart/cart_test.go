package cart

import (
	"testing"

	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitA(qty int) AddItem {
	return AddItem{ProductID: "prod-a", Quantity: qty, Price: "100.00", Name: "Chemistry Explorer", ImageURL: "a.jpg"}
}

func kitB(qty int) AddItem {
	return AddItem{ProductID: "prod-b", Quantity: qty, Price: "200.00", Name: "Robotics Starter", ImageURL: "b.jpg"}
}

func TestAddNewItem(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))

	require.Len(t, state.Items, 1)
	assert.Equal(t, "prod-a", state.Items[0].ProductID)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, "200.00", state.Total)
	assert.Equal(t, 2, state.ItemCount)
	assert.Contains(t, state.Items[0].ID, "prod-a_")
}

func TestAddExistingProductMergesQuantity(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	state = Add(state, kitA(3))

	require.Len(t, state.Items, 1, "adding the same product must not create a duplicate entry")
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, "500.00", state.Total)
	assert.Equal(t, 5, state.ItemCount)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(1))
	state = Add(state, kitB(1))
	state = Add(state, kitA(1))

	require.Len(t, state.Items, 2)
	assert.Equal(t, "prod-a", state.Items[0].ProductID)
	assert.Equal(t, "prod-b", state.Items[1].ProductID)
}

func TestRemove(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	state = Add(state, kitB(1))
	state = Remove(state, "prod-a")

	require.Len(t, state.Items, 1)
	assert.Equal(t, "prod-b", state.Items[0].ProductID)
	assert.Equal(t, "200.00", state.Total)
	assert.Equal(t, 1, state.ItemCount)
}

func TestRemoveMissingProductIsNoop(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	next := Remove(state, "prod-z")

	assert.Equal(t, state.Items, next.Items)
	assert.Equal(t, state.Total, next.Total)
	assert.Equal(t, state.ItemCount, next.ItemCount)
}

func TestSetQuantityOverwrites(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	state = SetQuantity(state, "prod-a", 7)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 7, state.Items[0].Quantity)
	assert.Equal(t, "700.00", state.Total)
	assert.Equal(t, 7, state.ItemCount)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	base := Add(models.EmptyCart(), kitA(2))
	base = Add(base, kitB(1))

	viaSet := SetQuantity(base, "prod-a", 0)
	viaRemove := Remove(base, "prod-a")

	assert.Equal(t, viaRemove, viaSet)

	viaNegative := SetQuantity(base, "prod-a", -3)
	assert.Equal(t, viaRemove, viaNegative)
}

func TestClear(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	state = Add(state, kitB(4))
	state = Clear()

	assert.Equal(t, models.EmptyCart(), state)
	assert.Equal(t, "0.00", state.Total)
	assert.Equal(t, 0, state.ItemCount)
	assert.Empty(t, state.Items)
}

func TestReloadTrustsSnapshotVerbatim(t *testing.T) {
	// deliberately inconsistent totals: reload must not recompute
	snapshot := models.Cart{
		Items:     []models.CartItem{{ID: "x_1", ProductID: "x", Quantity: 1, Price: "10.00"}},
		Total:     "999.99",
		ItemCount: 42,
	}

	state := Reload(snapshot)
	assert.Equal(t, snapshot, state)
}

// TestTotalsAreDerivedFromItems drives a mixed transition sequence and checks
// that total and item count always equal the sums over the resulting lines.
func TestTotalsAreDerivedFromItems(t *testing.T) {
	state := models.EmptyCart()
	steps := []func(models.Cart) models.Cart{
		func(s models.Cart) models.Cart { return Add(s, kitA(2)) },
		func(s models.Cart) models.Cart { return Add(s, kitB(1)) },
		func(s models.Cart) models.Cart { return Add(s, kitA(3)) },
		func(s models.Cart) models.Cart { return SetQuantity(s, "prod-b", 4) },
		func(s models.Cart) models.Cart { return Remove(s, "prod-a") },
		func(s models.Cart) models.Cart { return Add(s, kitA(1)) },
		func(s models.Cart) models.Cart { return SetQuantity(s, "prod-a", 0) },
	}

	for i, step := range steps {
		state = step(state)

		total := decimal.Zero
		count := 0
		for _, item := range state.Items {
			price, err := decimal.NewFromString(item.Price)
			require.NoError(t, err)
			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			count += item.Quantity
		}

		assert.Equal(t, total.StringFixed(2), state.Total, "total after step %d", i)
		assert.Equal(t, count, state.ItemCount, "item count after step %d", i)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	state := Add(models.EmptyCart(), kitA(2))
	before := state.Items[0].Quantity

	_ = Add(state, kitA(5))
	_ = SetQuantity(state, "prod-a", 9)

	assert.Equal(t, before, state.Items[0].Quantity)
}
