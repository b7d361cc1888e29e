package storefront

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	tracking "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
)

func stringList(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// timestamp formats t as protojson formats a Timestamp.
func timestamp(t time.Time) string {
	return timestamppb.New(t).AsTime().Format(time.RFC3339Nano)
}

func productToMap(p *catalog.Product) map[string]any {
	specs := make([]any, 0, len(p.Specifications()))
	for _, s := range p.Specifications() {
		specs = append(specs, map[string]any{"name": s.Name, "value": s.Value})
	}

	m := map[string]any{
		"id":             p.ID(),
		"name":           p.Name(),
		"description":    p.Description(),
		"image":          p.Image(),
		"category":       p.Category(),
		"categoryName":   p.CategoryName(),
		"brand":          p.Brand(),
		"price":          p.Price().Float64(),
		"rating":         p.Rating(),
		"reviews":        p.Reviews(),
		"isNew":          p.IsNew(),
		"isFeatured":     p.IsFeatured(),
		"isSponsored":    p.IsSponsored(),
		"isTrending":     p.IsTrending(),
		"section":        string(p.Section()),
		"tags":           stringList(p.Tags()),
		"specifications": specs,
	}
	if orig, ok := p.OriginalPrice(); ok {
		m["originalPrice"] = orig.Float64()
	}
	return m
}

func productsToList(products []*catalog.Product) []any {
	out := make([]any, 0, len(products))
	for _, p := range products {
		out = append(out, productToMap(p))
	}
	return out
}

func trackedOrderToStruct(o *tracking.TrackedOrder) (*structpb.Struct, error) {
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"id":       it.ID,
			"name":     it.Name,
			"image":    it.Image,
			"price":    it.Price.Float64(),
			"quantity": it.Quantity,
		})
	}

	events := make([]any, 0, len(o.Events))
	for _, e := range o.Events {
		ev := map[string]any{
			"id":          e.ID,
			"status":      e.Status,
			"description": e.Description,
			"location":    e.Location,
			"completed":   e.Completed,
		}
		if !e.Timestamp.IsZero() {
			ev["timestamp"] = timestamp(e.Timestamp)
		}
		events = append(events, ev)
	}

	m := map[string]any{
		"orderNumber":       o.OrderNumber,
		"status":            string(o.Status),
		"orderDate":         timestamp(o.OrderDate),
		"estimatedDelivery": timestamp(o.EstimatedDelivery),
		"items":             items,
		"subtotal":          o.Subtotal.Float64(),
		"shipping":          o.Shipping.Float64(),
		"tax":               o.Tax.Float64(),
		"total":             o.Total.Float64(),
		"shippingAddress": map[string]any{
			"name":    o.ShippingAddress.Name,
			"address": o.ShippingAddress.Address,
			"city":    o.ShippingAddress.City,
			"state":   o.ShippingAddress.State,
			"zipCode": o.ShippingAddress.ZipCode,
			"phone":   o.ShippingAddress.Phone,
		},
		"paymentMethod":  o.PaymentMethod,
		"carrier":        o.Carrier,
		"trackingNumber": o.TrackingNumber,
		"trackingEvents": events,
	}
	if o.Delivered() {
		m["actualDelivery"] = timestamp(o.ActualDelivery)
	}
	return structpb.NewStruct(m)
}
