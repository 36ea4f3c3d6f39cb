package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderPayload(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":      id,
		"tableId": "table-1",
		"items": []map[string]interface{}{
			{"menuItemId": 1, "name": "Soup", "quantity": 2, "price": 5.5},
		},
		"status":        "pending",
		"total":         11.0,
		"tax":           1.0,
		"subtotal":      10.0,
		"waiterId":      "staff-1",
		"waiterName":    "Jane",
		"estimatedTime": "20 min",
	}
}

func TestCreateAndListOrders(t *testing.T) {
	r := setupRouter(t, "order_ctrl")

	w := doJSON(t, r, "POST", "/api/orders", orderPayload("order-1"))
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "order-1", createResp["id"])

	w = doJSON(t, r, "GET", "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, "table-1", got["tableId"])
	assert.Equal(t, "Jane", got["waiterName"])

	// items must come back as the structured sequence, not serialized text
	items, ok := got["items"].([]interface{})
	assert.True(t, ok, "items must be a JSON array")
	assert.Len(t, items, 1)
	first, ok := items[0].(map[string]interface{})
	assert.True(t, ok, "line items must be objects")
	assert.Equal(t, "Soup", first["name"])
	assert.Equal(t, float64(2), first["quantity"])

	// total = subtotal + tax holds for this valid input
	assert.Equal(t, got["total"], got["subtotal"].(float64)+got["tax"].(float64))

	// timestamps are store-assigned
	assert.NotEmpty(t, got["createdAt"])
	assert.NotEmpty(t, got["updatedAt"])
}

func TestCreateOrderMissingItems(t *testing.T) {
	r := setupRouter(t, "order_ctrl_validation")

	payload := orderPayload("order-1")
	delete(payload, "items")

	w := doJSON(t, r, "POST", "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderDuplicateIDConflicts(t *testing.T) {
	r := setupRouter(t, "order_ctrl_conflict")

	w := doJSON(t, r, "POST", "/api/orders", orderPayload("order-1"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/orders", orderPayload("order-1"))
	assert.Equal(t, http.StatusConflict, w.Code)
}
