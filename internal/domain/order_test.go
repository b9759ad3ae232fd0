package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Address:       "1 Main Street",
		Country:       "US",
		Zip:           "12345",
		Phone:         "555-000-1234",
		PaymentMethod: "cod",
	}
}

func TestCheckoutRequestValid(t *testing.T) {
	assert.NoError(t, validCheckout().Validate())

	extended := validCheckout()
	extended.Zip = "12345-6789"
	assert.NoError(t, extended.Validate())
}

func TestCheckoutRequestFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CheckoutRequest)
		field  string
	}{
		{"short first name", func(r *CheckoutRequest) { r.FirstName = "J" }, "first_name"},
		{"whitespace last name", func(r *CheckoutRequest) { r.LastName = "  " }, "last_name"},
		{"bad email", func(r *CheckoutRequest) { r.Email = "jane@" }, "email"},
		{"short address", func(r *CheckoutRequest) { r.Address = "abc" }, "address"},
		{"missing country", func(r *CheckoutRequest) { r.Country = "" }, "country"},
		{"bad zip", func(r *CheckoutRequest) { r.Zip = "12" }, "zip"},
		{"bad phone", func(r *CheckoutRequest) { r.Phone = "555" }, "phone"},
		{"unsupported payment", func(r *CheckoutRequest) { r.PaymentMethod = "card" }, "payment_method"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckout()
			tc.mutate(&req)

			var validationErr *ValidationError
			err := req.Validate()
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}
