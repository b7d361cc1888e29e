package domain

import (
	"fmt"
	"strings"
)

// PaymentType tags the PaymentMethod variants.
type PaymentType string

const (
	PaymentCard   PaymentType = "card"
	PaymentUPI    PaymentType = "upi"
	PaymentWallet PaymentType = "wallet"
)

// PaymentMethod is one of CardPayment, UPIPayment or WalletPayment.
// Fields are not validated; no payment is processed.
type PaymentMethod interface {
	Type() PaymentType
	Describe() string
}

type CardPayment struct {
	Number string
	Expiry string
	CVV    string
	Holder string
}

func (CardPayment) Type() PaymentType { return PaymentCard }

func (c CardPayment) Describe() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)
	if len(digits) < 4 {
		return "Card"
	}
	return "Card ending in " + digits[len(digits)-4:]
}

type UPIPayment struct {
	ID string
}

func (UPIPayment) Type() PaymentType { return PaymentUPI }

func (u UPIPayment) Describe() string {
	if u.ID == "" {
		return "UPI"
	}
	return "UPI (" + u.ID + ")"
}

// Wallet is a supported digital wallet.
type Wallet string

const (
	WalletPayPal    Wallet = "PayPal"
	WalletApplePay  Wallet = "Apple Pay"
	WalletGooglePay Wallet = "Google Pay"
	WalletAmazonPay Wallet = "Amazon Pay"
)

// Wallets returns the supported wallets in display order.
func Wallets() []Wallet {
	return []Wallet{WalletPayPal, WalletApplePay, WalletGooglePay, WalletAmazonPay}
}

// ParseWallet accepts a wallet display name.
func ParseWallet(s string) (Wallet, error) {
	for _, w := range Wallets() {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWallet, s)
}

type WalletPayment struct {
	Wallet Wallet
}

func (WalletPayment) Type() PaymentType { return PaymentWallet }

func (w WalletPayment) Describe() string {
	if w.Wallet == "" {
		return "Digital wallet"
	}
	return string(w.Wallet)
}
