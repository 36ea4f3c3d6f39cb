package codec

import (
	"encoding/json"

	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
)

// OrderCodec serializes the opaque line-item objects into the single items
// column. The items themselves are never interpreted, only required to form
// a JSON array.
type OrderCodec struct{}

func (OrderCodec) Encode(o models.Order) (models.OrderRow, error) {
	items := o.Items
	if items == nil {
		items = []json.RawMessage{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return models.OrderRow{}, err
	}

	return models.OrderRow{
		ID:            o.ID,
		TableID:       o.TableID,
		Items:         string(raw),
		Status:        o.Status,
		Total:         o.Total,
		Tax:           o.Tax,
		Subtotal:      o.Subtotal,
		WaiterID:      o.WaiterID,
		WaiterName:    o.WaiterName,
		EstimatedTime: o.EstimatedTime,
	}, nil
}

func (OrderCodec) Decode(row models.OrderRow) (models.Order, error) {
	items := []json.RawMessage{}
	if row.Items != "" {
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			return models.Order{}, faults.Decodef(err, "stored items is not a valid JSON array")
		}
		if items == nil {
			items = []json.RawMessage{}
		}
	}

	return models.Order{
		ID:            row.ID,
		TableID:       row.TableID,
		Items:         items,
		Status:        row.Status,
		Total:         row.Total,
		Tax:           row.Tax,
		Subtotal:      row.Subtotal,
		WaiterID:      row.WaiterID,
		WaiterName:    row.WaiterName,
		EstimatedTime: row.EstimatedTime,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}
