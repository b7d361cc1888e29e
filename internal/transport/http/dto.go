package http

import (
	"time"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	checkout "github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/get_checkout"
	notification "github.com/light-bringer/storefront-service/internal/app/notification/domain"
	"github.com/light-bringer/storefront-service/internal/app/selection"
	selectiondomain "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	tracking "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type errorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

type specDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type productDTO struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Image          string       `json:"image"`
	Category       string       `json:"category"`
	CategoryName   string       `json:"categoryName"`
	Brand          string       `json:"brand"`
	Price          money.Money  `json:"price"`
	OriginalPrice  *money.Money `json:"originalPrice,omitempty"`
	Rating         float64      `json:"rating"`
	Reviews        int          `json:"reviews"`
	IsNew          bool         `json:"isNew"`
	IsFeatured     bool         `json:"isFeatured"`
	IsSponsored    bool         `json:"isSponsored"`
	IsTrending     bool         `json:"isTrending"`
	Tags           []string     `json:"tags"`
	QuickActions   []string     `json:"quickActions"`
	Specifications []specDTO    `json:"specifications"`
}

func toProductDTO(p *catalog.Product) productDTO {
	dto := productDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		Image:        p.Image(),
		Category:     p.Category(),
		CategoryName: p.CategoryName(),
		Brand:        p.Brand(),
		Price:        p.Price(),
		Rating:       p.Rating(),
		Reviews:      p.Reviews(),
		IsNew:        p.IsNew(),
		IsFeatured:   p.IsFeatured(),
		IsSponsored:  p.IsSponsored(),
		IsTrending:   p.IsTrending(),
		Tags:         p.Tags(),
		QuickActions: p.QuickActions(),
	}
	if orig, ok := p.OriginalPrice(); ok {
		dto.OriginalPrice = &orig
	}
	for _, s := range p.Specifications() {
		dto.Specifications = append(dto.Specifications, specDTO{Name: s.Name, Value: s.Value})
	}
	return dto
}

func toProductDTOs(products []*catalog.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

type optionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func toOptionDTOs(opts []catalog.Option) []optionDTO {
	out := make([]optionDTO, 0, len(opts))
	for _, o := range opts {
		out = append(out, optionDTO{Value: o.Value, Label: o.Label})
	}
	return out
}

type brandDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

func toBrandDTO(b catalog.Brand) brandDTO {
	return brandDTO{ID: b.ID, Name: b.Name, Logo: b.Logo}
}

type cartLineDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    money.Money `json:"price"`
	Image    string      `json:"image"`
	Brand    string      `json:"brand"`
	Quantity int         `json:"quantity"`
	Total    money.Money `json:"total"`
}

func toCartLineDTOs(lines []selectiondomain.CartLine) []cartLineDTO {
	out := make([]cartLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineDTO{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    l.Price,
			Image:    l.Image,
			Brand:    l.Brand,
			Quantity: l.Quantity,
			Total:    l.Total(),
		})
	}
	return out
}

type totalsDTO struct {
	ItemCount int         `json:"itemCount"`
	Subtotal  money.Money `json:"subtotal"`
	Shipping  money.Money `json:"shipping"`
	Discount  money.Money `json:"discount"`
	Total     money.Money `json:"total"`
}

func toTotalsDTO(t checkout.Totals) totalsDTO {
	return totalsDTO{
		ItemCount: t.ItemCount,
		Subtotal:  t.Subtotal,
		Shipping:  t.Shipping,
		Discount:  t.Discount,
		Total:     t.Total,
	}
}

type selectionDTO struct {
	Wishlist         []string      `json:"wishlist"`
	WishlistProducts []productDTO  `json:"wishlistProducts"`
	Cart             []cartLineDTO `json:"cart"`
	CartSummary      totalsDTO     `json:"cartSummary"`
	Compare          []productDTO  `json:"compare"`
}

func toSelectionDTO(store *selection.Store) selectionDTO {
	snap := store.Snapshot()
	wishlist := snap.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	return selectionDTO{
		Wishlist:         wishlist,
		WishlistProducts: toProductDTOs(store.WishlistProducts()),
		Cart:             toCartLineDTOs(snap.Cart),
		CartSummary:      toTotalsDTO(checkout.ComputeTotals(snap.Cart, nil)),
		Compare:          toProductDTOs(snap.Compare),
	}
}

type toastDTO struct {
	ID         string `json:"id"`
	Kind       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DurationMS int64  `json:"duration"`
	Action     string `json:"action,omitempty"`
	Product    *struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"product,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toToastDTOs(toasts []notification.Toast) []toastDTO {
	out := make([]toastDTO, 0, len(toasts))
	for _, t := range toasts {
		dto := toastDTO{
			ID:         t.ID,
			Kind:       string(t.Kind),
			Title:      t.Title,
			Message:    t.Message,
			DurationMS: t.Lifetime().Milliseconds(),
			Action:     string(t.Action),
			CreatedAt:  t.CreatedAt.UTC().Format(timeLayout),
		}
		if t.Product != nil {
			dto.Product = &struct {
				Name  string `json:"name"`
				Image string `json:"image"`
			}{Name: t.Product.Name, Image: t.Product.Image}
		}
		out = append(out, dto)
	}
	return out
}

type deliveryDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

func (d deliveryDTO) toDomain() checkout.DeliveryDetails {
	return checkout.DeliveryDetails{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
	}
}

func toDeliveryDTO(d checkout.DeliveryDetails) deliveryDTO {
	return deliveryDTO{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
	}
}

type confirmationDTO struct {
	OrderNumber       string      `json:"orderNumber"`
	Total             money.Money `json:"total"`
	ItemCount         int         `json:"itemCount"`
	EstimatedDelivery string      `json:"estimatedDelivery"`
}

func toConfirmationDTO(c checkout.Confirmation) *confirmationDTO {
	return &confirmationDTO{
		OrderNumber:       c.OrderNumber,
		Total:             c.Total,
		ItemCount:         c.ItemCount,
		EstimatedDelivery: c.EstimatedDelivery.UTC().Format(timeLayout),
	}
}

type checkoutDTO struct {
	Step          string           `json:"step"`
	StepNumber    int              `json:"stepNumber"`
	StepTitle     string           `json:"stepTitle"`
	Lines         []cartLineDTO    `json:"lines"`
	Delivery      deliveryDTO      `json:"delivery"`
	MissingFields []string         `json:"missingFields"`
	Payment       string           `json:"paymentType"`
	PaymentLabel  string           `json:"paymentLabel"`
	Coupon        string           `json:"coupon,omitempty"`
	Totals        totalsDTO        `json:"totals"`
	Processing    bool             `json:"isProcessing"`
	Confirmation  *confirmationDTO `json:"confirmation,omitempty"`
}

func toCheckoutDTO(res *get_checkout.Result) checkoutDTO {
	dto := checkoutDTO{
		Step:          res.Step.String(),
		StepNumber:    int(res.Step),
		StepTitle:     res.Step.Title(),
		Lines:         toCartLineDTOs(res.Lines),
		Delivery:      toDeliveryDTO(res.Delivery),
		MissingFields: res.MissingFields,
		Totals:        toTotalsDTO(res.Totals),
		Processing:    res.Processing,
	}
	if dto.MissingFields == nil {
		dto.MissingFields = []string{}
	}
	if res.Payment != nil {
		dto.Payment = string(res.Payment.Type())
		dto.PaymentLabel = res.Payment.Describe()
	}
	if res.Coupon != nil {
		dto.Coupon = res.Coupon.Code
	}
	if res.Confirmation != nil {
		dto.Confirmation = toConfirmationDTO(*res.Confirmation)
	}
	return dto
}

type trackingItemDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Image    string      `json:"image"`
	Price    money.Money `json:"price"`
	Quantity int         `json:"quantity"`
	Category string      `json:"category,omitempty"`
}

type trackingEventDTO struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp,omitempty"`
	Location    string `json:"location,omitempty"`
	Completed   bool   `json:"completed"`
}

type addressDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

type trackedOrderDTO struct {
	OrderNumber       string             `json:"orderNumber"`
	Status            string             `json:"status"`
	OrderDate         string             `json:"orderDate"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	ActualDelivery    string             `json:"actualDelivery,omitempty"`
	Items             []trackingItemDTO  `json:"items"`
	Subtotal          money.Money        `json:"subtotal"`
	Shipping          money.Money        `json:"shipping"`
	Tax               money.Money        `json:"tax"`
	Total             money.Money        `json:"total"`
	ShippingAddress   addressDTO         `json:"shippingAddress"`
	PaymentMethod     string             `json:"paymentMethod"`
	Carrier           string             `json:"carrier,omitempty"`
	TrackingNumber    string             `json:"trackingNumber,omitempty"`
	Events            []trackingEventDTO `json:"trackingEvents"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func toTrackedOrderDTO(o *tracking.TrackedOrder) trackedOrderDTO {
	dto := trackedOrderDTO{
		OrderNumber:       o.OrderNumber,
		Status:            string(o.Status),
		OrderDate:         formatDate(o.OrderDate),
		EstimatedDelivery: formatDate(o.EstimatedDelivery),
		ActualDelivery:    formatDate(o.ActualDelivery),
		Subtotal:          o.Subtotal,
		Shipping:          o.Shipping,
		Tax:               o.Tax,
		Total:             o.Total,
		ShippingAddress: addressDTO{
			Name:    o.ShippingAddress.Name,
			Address: o.ShippingAddress.Address,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Phone:   o.ShippingAddress.Phone,
		},
		PaymentMethod:  o.PaymentMethod,
		Carrier:        o.Carrier,
		TrackingNumber: o.TrackingNumber,
	}
	for _, it := range o.Items {
		dto.Items = append(dto.Items, trackingItemDTO{
			ID: it.ID, Name: it.Name, Image: it.Image, Price: it.Price, Quantity: it.Quantity, Category: it.Category,
		})
	}
	for _, e := range o.Events {
		ev := trackingEventDTO{
			ID:          e.ID,
			Status:      e.Status,
			Description: e.Description,
			Location:    e.Location,
			Completed:   e.Completed,
		}
		if !e.Timestamp.IsZero() {
			ev.Timestamp = e.Timestamp.UTC().Format(timeLayout)
		}
		dto.Events = append(dto.Events, ev)
	}
	return dto
}

// Event represents an outbox event in the HTTP response.
type Event struct {
	EventID      string  `json:"event_id"`
	EventType    string  `json:"event_type"`
	AggregateID  string  `json:"aggregate_id"`
	Payload      string  `json:"payload"`
	Status       string  `json:"status"`
	RetryCount   int64   `json:"retry_count"`
	ErrorMessage string  `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
}

func toEvent(e *contracts.OutboxEvent) Event {
	event := Event{
		EventID:      e.EventID,
		EventType:    e.EventType,
		AggregateID:  e.AggregateID,
		Payload:      e.Payload,
		Status:       e.Status,
		RetryCount:   e.RetryCount,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt.UTC().Format(timeLayout),
	}
	if !e.ProcessedAt.IsZero() {
		processedAt := e.ProcessedAt.UTC().Format(timeLayout)
		event.ProcessedAt = &processedAt
	}
	return event
}
