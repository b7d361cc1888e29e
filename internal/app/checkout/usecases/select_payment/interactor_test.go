package select_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/repo"
)

func TestPaymentFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    domain.PaymentMethod
		wantErr error
	}{
		{
			name: "card",
			req:  Request{Type: domain.PaymentCard, CardNumber: "4111", CardExpiry: "12/30", CardCVV: "123", CardHolder: "Ada"},
			want: domain.CardPayment{Number: "4111", Expiry: "12/30", CVV: "123", Holder: "Ada"},
		},
		{name: "upi", req: Request{Type: domain.PaymentUPI, UPIID: "ada@upi"}, want: domain.UPIPayment{ID: "ada@upi"}},
		{name: "wallet", req: Request{Type: domain.PaymentWallet, Wallet: "Apple Pay"}, want: domain.WalletPayment{Wallet: domain.WalletApplePay}},
		{name: "unknown wallet", req: Request{Type: domain.PaymentWallet, Wallet: "Venmo"}, wantErr: domain.ErrUnknownWallet},
		{name: "unknown type", req: Request{Type: "cash"}, wantErr: domain.ErrUnknownPaymentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PaymentFromRequest(&tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	workflows := repo.NewMemoryWorkflowRepo()
	require.NoError(t, workflows.Create(ctx, "device-1", domain.NewWorkflow(nil)))
	uc := NewInteractor(workflows)

	_, err := uc.Execute(ctx, &Request{DeviceID: "device-1", Type: domain.PaymentUPI})
	assert.ErrorIs(t, err, domain.ErrWrongStep, "payment is chosen after delivery")

	require.NoError(t, workflows.Update(ctx, "device-1", func(w *domain.Workflow) error {
		require.NoError(t, w.SetDelivery(domain.DeliveryDetails{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100",
			Address: "1 Analytical Way", City: "London", State: "LDN", ZipCode: "N1",
		}))
		return w.Next()
	}))

	resp, err := uc.Execute(ctx, &Request{DeviceID: "device-1", Type: domain.PaymentUPI})
	require.NoError(t, err, "payment fields are not validated")
	assert.Equal(t, domain.StepOrderSummary, resp.Step)

	require.NoError(t, workflows.Update(ctx, "device-1", func(w *domain.Workflow) error {
		assert.Equal(t, domain.PaymentUPI, w.Payment().Type())
		return nil
	}))
}
