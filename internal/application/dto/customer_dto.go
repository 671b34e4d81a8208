package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	CompanyName         string           `json:"companyName"`
	ContactPerson       string           `json:"contactPerson"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Address             *string          `json:"address"`
	City                *string          `json:"city"`
	State               *string          `json:"state"`
	ZipCode             *string          `json:"zipCode"`
	BillingAddress      *string          `json:"billingAddress"`
	BillingCity         *string          `json:"billingCity"`
	BillingState        *string          `json:"billingState"`
	BillingZipCode      *string          `json:"billingZipCode"`
	CreditLimit         *decimal.Decimal `json:"creditLimit"`
	PaymentTerms        string           `json:"paymentTerms"`
	SpecialInstructions *string          `json:"specialInstructions"`
}

// UpdateCustomerRequest actualización parcial.
type UpdateCustomerRequest struct {
	CompanyName         *string          `json:"companyName"`
	ContactPerson       *string          `json:"contactPerson"`
	Email               *string          `json:"email"`
	Phone               *string          `json:"phone"`
	Address             *string          `json:"address"`
	City                *string          `json:"city"`
	State               *string          `json:"state"`
	ZipCode             *string          `json:"zipCode"`
	BillingAddress      *string          `json:"billingAddress"`
	BillingCity         *string          `json:"billingCity"`
	BillingState        *string          `json:"billingState"`
	BillingZipCode      *string          `json:"billingZipCode"`
	CreditLimit         *decimal.Decimal `json:"creditLimit"`
	PaymentTerms        *string          `json:"paymentTerms"`
	SpecialInstructions *string          `json:"specialInstructions"`
	IsActive            *bool            `json:"isActive"`
}

// CustomerResponse cliente serializado.
type CustomerResponse struct {
	ID                  string           `json:"id"`
	CompanyName         string           `json:"companyName"`
	ContactPerson       string           `json:"contactPerson"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Address             *string          `json:"address,omitempty"`
	City                *string          `json:"city,omitempty"`
	State               *string          `json:"state,omitempty"`
	ZipCode             *string          `json:"zipCode,omitempty"`
	BillingAddress      *string          `json:"billingAddress,omitempty"`
	BillingCity         *string          `json:"billingCity,omitempty"`
	BillingState        *string          `json:"billingState,omitempty"`
	BillingZipCode      *string          `json:"billingZipCode,omitempty"`
	CreditLimit         *decimal.Decimal `json:"creditLimit,omitempty"`
	PaymentTerms        string           `json:"paymentTerms"`
	SpecialInstructions *string          `json:"specialInstructions,omitempty"`
	IsActive            bool             `json:"isActive"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// CustomerListResponse listado paginado.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
