package domain

// Coupon is a percentage discount on the subtotal.
type Coupon struct {
	Code    string
	Percent int
}

var coupons = map[string]int{
	"SAVE10":    10,
	"WELCOME20": 20,
	"FIRST15":   15,
}

// LookupCoupon matches code exactly, including case.
func LookupCoupon(code string) (Coupon, bool) {
	pct, ok := coupons[code]
	if !ok {
		return Coupon{}, false
	}
	return Coupon{Code: code, Percent: pct}, true
}
