package repo

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedOrders returns the demo orders every registry starts with.
func SeedOrders() []*domain.TrackedOrder {
	return []*domain.TrackedOrder{
		{
			OrderNumber:       "ORD-1234567890",
			Status:            domain.StatusInTransit,
			OrderDate:         day("2024-01-15"),
			EstimatedDelivery: day("2024-01-22"),
			Items: []domain.Item{
				{ID: "1", Name: "Wireless Bluetooth Headphones", Image: "/api/placeholder/80/80", Price: money.MustParse("99.99"), Quantity: 1, Category: "Electronics"},
				{ID: "2", Name: "USB-C Charging Cable", Image: "/api/placeholder/80/80", Price: money.MustParse("19.99"), Quantity: 2, Category: "Accessories"},
			},
			Subtotal: money.MustParse("139.97"),
			Shipping: money.MustParse("9.99"),
			Tax:      money.MustParse("11.20"),
			Total:    money.MustParse("161.16"),
			ShippingAddress: domain.Address{
				Name:    "John Doe",
				Address: "123 Main Street, Apt 4B",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Phone:   "+1 (555) 123-4567",
			},
			PaymentMethod:  "Visa ending in 4242",
			Carrier:        "FedEx",
			TrackingNumber: "1234567890123456",
			Events: []domain.Event{
				{ID: "1", Status: domain.StepOrderPlaced, Description: "Your order has been successfully placed and is being processed.", Timestamp: ts("2024-01-15T10:30:00Z"), Location: "Online", Completed: true},
				{ID: "2", Status: domain.StepProcessing, Description: "Your order is being prepared for shipment.", Timestamp: ts("2024-01-16T14:20:00Z"), Location: "Warehouse - New Jersey", Completed: true},
				{ID: "3", Status: domain.StepShipped, Description: "Your order has been shipped and is on its way.", Timestamp: ts("2024-01-17T09:15:00Z"), Location: "FedEx Facility - Newark, NJ", Completed: true},
				{ID: "4", Status: domain.StepInTransit, Description: "Package is currently in transit to your delivery address.", Timestamp: ts("2024-01-19T16:45:00Z"), Location: "FedEx Facility - Brooklyn, NY", Completed: true},
				{ID: "5", Status: domain.StepOutForDelivery, Description: "Package is out for delivery and will arrive today.", Timestamp: ts("2024-01-22T08:00:00Z"), Location: "Local Delivery Facility"},
				{ID: "6", Status: domain.StepDelivered, Description: "Package has been delivered successfully.", Location: "Your Address"},
			},
		},
		{
			OrderNumber:       "ORD-0987654321",
			Status:            domain.StatusDelivered,
			OrderDate:         day("2024-01-10"),
			EstimatedDelivery: day("2024-01-17"),
			ActualDelivery:    day("2024-01-16"),
			Items: []domain.Item{
				{ID: "3", Name: "Smart Watch Series 8", Image: "/api/placeholder/80/80", Price: money.MustParse("299.99"), Quantity: 1, Category: "Electronics"},
			},
			Subtotal: money.MustParse("299.99"),
			Shipping: money.Zero(),
			Tax:      money.MustParse("24.00"),
			Total:    money.MustParse("323.99"),
			ShippingAddress: domain.Address{
				Name:    "Jane Smith",
				Address: "456 Oak Avenue",
				City:    "Los Angeles",
				State:   "CA",
				ZipCode: "90210",
				Phone:   "+1 (555) 987-6543",
			},
			PaymentMethod:  "Mastercard ending in 8888",
			Carrier:        "UPS",
			TrackingNumber: "9876543210987654",
			Events: []domain.Event{
				{ID: "1", Status: domain.StepOrderPlaced, Description: "Your order has been successfully placed and is being processed.", Timestamp: ts("2024-01-10T11:00:00Z"), Location: "Online", Completed: true},
				{ID: "2", Status: domain.StepProcessing, Description: "Your order is being prepared for shipment.", Timestamp: ts("2024-01-11T13:30:00Z"), Location: "Warehouse - California", Completed: true},
				{ID: "3", Status: domain.StepShipped, Description: "Your order has been shipped and is on its way.", Timestamp: ts("2024-01-12T10:00:00Z"), Location: "UPS Facility - Los Angeles, CA", Completed: true},
				{ID: "4", Status: domain.StepInTransit, Description: "Package is currently in transit to your delivery address.", Timestamp: ts("2024-01-15T14:20:00Z"), Location: "UPS Facility - Beverly Hills, CA", Completed: true},
				{ID: "5", Status: domain.StepOutForDelivery, Description: "Package is out for delivery and will arrive today.", Timestamp: ts("2024-01-16T08:30:00Z"), Location: "Local Delivery Facility", Completed: true},
				{ID: "6", Status: domain.StepDelivered, Description: "Package has been delivered successfully to your front door.", Timestamp: ts("2024-01-16T15:45:00Z"), Location: "456 Oak Avenue, Los Angeles, CA", Completed: true},
			},
		},
	}
}
