package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bill-printing-app/models"
)

func TestCreateOrder_Totals(t *testing.T) {
	app := setupApp(t)
	tikka := app.seedMenuItem(t, "Paneer Tikka", 100, 0.05)

	out := app.createOrder(t, map[string]interface{}{
		"table_no": "T4",
		"items":    []map[string]interface{}{{"menu_item_id": tikka.ID, "quantity": 2}},
		"discount": 50,
	})

	_, err := uuid.Parse(out.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Totals{Subtotal: 150, TaxTotal: 7.5, GrandTotal: 157.5}, out.Totals)
}

func TestCreateOrder_MixedRates(t *testing.T) {
	app := setupApp(t)
	a := app.seedMenuItem(t, "Biryani", 200, 0.05)
	b := app.seedMenuItem(t, "Mocktail", 100, 0.18)

	out := app.createOrder(t, map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": a.ID, "quantity": 1},
			{"menu_item_id": b.ID, "quantity": 1},
		},
		"discount": 30,
	})
	assert.Equal(t, models.Totals{Subtotal: 270, TaxTotal: 25.2, GrandTotal: 295.2}, out.Totals)
}

func TestCreateOrder_EmptyCartAndOversizedDiscount(t *testing.T) {
	app := setupApp(t)
	item := app.seedMenuItem(t, "Lassi", 60, 0.05)

	empty := app.createOrder(t, map[string]interface{}{"items": []interface{}{}})
	assert.Equal(t, models.Totals{}, empty.Totals)

	zeroed := app.createOrder(t, map[string]interface{}{
		"items":    []map[string]interface{}{{"menu_item_id": item.ID, "quantity": 1}},
		"discount": 500,
	})
	assert.Equal(t, models.Totals{}, zeroed.Totals)

	var stored models.Order
	require.NoError(t, app.DB.First(&stored, "id = ?", zeroed.ID).Error)
	assert.Equal(t, 500.0, stored.Discount)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestCreateOrder_Failures(t *testing.T) {
	app := setupApp(t)
	item := app.seedMenuItem(t, "Dal Makhani", 180, 0.05)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"unknown menu item", map[string]interface{}{"items": []map[string]interface{}{
			{"menu_item_id": item.ID, "quantity": 1},
			{"menu_item_id": uuid.NewString(), "quantity": 1},
		}}, http.StatusNotFound},
		{"malformed menu item id", map[string]interface{}{"items": []map[string]interface{}{
			{"menu_item_id": "not-an-id", "quantity": 1},
		}}, http.StatusBadRequest},
		{"zero quantity", map[string]interface{}{"items": []map[string]interface{}{
			{"menu_item_id": item.ID, "quantity": 0},
		}}, http.StatusBadRequest},
		{"missing items", map[string]interface{}{"table_no": "T1"}, http.StatusBadRequest},
		{"broken json", `{"items": [`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, "/orders", tt.body, "")
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			env := decodeEnvelope(t, w, nil)
			assert.False(t, env.Status)
		})
	}

	var count int64
	require.NoError(t, app.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "failed creations must not leave orders behind")
}

func TestUpdateOrderStatus(t *testing.T) {
	app := setupApp(t)
	order := app.createOrder(t, map[string]interface{}{"items": []interface{}{}})
	path := "/orders/" + order.ID + "/status"

	for _, status := range []string{"served", "pending", "cancelled", "preparing"} {
		w := app.do(t, http.MethodPatch, path, map[string]string{"status": status}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var data map[string]bool
		decodeEnvelope(t, w, &data)
		assert.Equal(t, map[string]bool{"ok": true}, data)
	}

	var stored models.Order
	require.NoError(t, app.DB.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPreparing, stored.Status)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPatch, path, map[string]string{"status": "eaten"}, "").Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPatch, "/orders/xyz/status", map[string]string{"status": "ready"}, "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPatch, "/orders/"+uuid.NewString()+"/status", map[string]string{"status": "ready"}, "").Code)
}

func TestGetOrderBill_IsSnapshot(t *testing.T) {
	app := setupApp(t)
	naan := app.seedMenuItem(t, "Butter Naan", 40, 0.05)
	curry := app.seedMenuItem(t, "Kadai Paneer", 220, 0.05)

	notes := "no onion"
	order := app.createOrder(t, map[string]interface{}{
		"table_no": "T9",
		"items": []map[string]interface{}{
			{"menu_item_id": curry.ID, "quantity": 1, "notes": notes},
			{"menu_item_id": naan.ID, "quantity": 3},
		},
	})

	// Later catalog edits must not leak into the stored bill.
	require.NoError(t, app.DB.Model(&models.MenuItem{}).Where("id = ?", naan.ID).
		Updates(map[string]interface{}{"price": 55, "name": "Garlic Naan"}).Error)

	w := app.do(t, http.MethodGet, "/orders/"+order.ID+"/bill", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var bill models.Order
	decodeEnvelope(t, w, &bill)
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "Kadai Paneer", bill.Items[0].Name)
	assert.Equal(t, &notes, bill.Items[0].Notes)
	assert.Equal(t, "Butter Naan", bill.Items[1].Name)
	assert.Equal(t, 40.0, bill.Items[1].Price)
	assert.Equal(t, 3, bill.Items[1].Quantity)
	assert.Equal(t, 340.0, bill.Subtotal)
	assert.Equal(t, 17.0, bill.TaxTotal)
	assert.Equal(t, 357.0, bill.GrandTotal)
	assert.Empty(t, bill.Payments)
	assert.Equal(t, "T9", *bill.TableNo)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/orders/12/bill", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/orders/"+uuid.NewString()+"/bill", nil, "").Code)
}

func TestListOrders(t *testing.T) {
	app := setupApp(t)
	first := app.createOrder(t, map[string]interface{}{"items": []interface{}{}})
	second := app.createOrder(t, map[string]interface{}{"items": []interface{}{}})
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPatch, "/orders/"+second.ID+"/status", map[string]string{"status": "ready"}, "").Code)

	var all []models.Order
	w := app.do(t, http.MethodGet, "/orders", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeEnvelope(t, w, &all)
	assert.Len(t, all, 2)

	var ready []models.Order
	w = app.do(t, http.MethodGet, "/orders?status=ready", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeEnvelope(t, w, &ready)
	require.Len(t, ready, 1)
	assert.Equal(t, second.ID, ready[0].ID)
	assert.NotEqual(t, first.ID, ready[0].ID)

	var none []models.Order
	w = app.do(t, http.MethodGet, "/orders?status=lost", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeEnvelope(t, w, &none)
	assert.Empty(t, none)
}
