package selection

import (
	notification "github.com/light-bringer/storefront-service/internal/app/notification/domain"
	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// toastFor returns the notification raised by event, if any.
func toastFor(event domain.DomainEvent) (notification.Toast, bool) {
	switch e := event.(type) {
	case *domain.WishlistItemAddedEvent:
		return productToast(notification.KindSuccess, "Added to Wishlist",
			e.Product.Name+" added to your wishlist", notification.ActionWishlist, e.Product), true

	case *domain.WishlistItemRemovedEvent:
		return productToast(notification.KindSuccess, "Removed from Wishlist",
			e.Product.Name+" removed from your wishlist", notification.ActionWishlist, e.Product), true

	case *domain.CartItemAddedEvent:
		return productToast(notification.KindSuccess, "Added to Cart",
			e.Product.Name+" added to your cart", notification.ActionCart, e.Product), true

	case *domain.CartQuantityIncreasedEvent:
		return productToast(notification.KindSuccess, "Quantity Updated",
			e.Product.Name+" quantity increased in cart", notification.ActionCart, e.Product), true

	case *domain.CartItemRemovedEvent:
		return notification.Toast{
			Kind:    notification.KindInfo,
			Title:   "Removed from Cart",
			Message: e.Product.Name + " removed from your cart",
		}, true

	case *domain.CompareItemDuplicateEvent:
		return notification.Toast{
			Kind:    notification.KindInfo,
			Title:   "Already in Comparison",
			Message: e.Product.Name + " is already in your comparison list",
		}, true

	case *domain.CompareItemAddedEvent:
		msg := e.Product.Name + " added to comparison"
		if e.Evicted != nil {
			msg += " (oldest item removed)"
		}
		return notification.Toast{
			Kind:    notification.KindSuccess,
			Title:   "Added to Compare",
			Message: msg,
		}, true
	}

	return notification.Toast{}, false
}

func productToast(kind notification.Kind, title, msg string, action notification.Action, p domain.ProductInfo) notification.Toast {
	return notification.Toast{
		Kind:    kind,
		Title:   title,
		Message: msg,
		Action:  action,
		Product: &notification.ProductRef{Name: p.Name, Image: p.Image},
	}
}
