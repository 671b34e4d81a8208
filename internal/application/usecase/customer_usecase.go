package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create da de alta un cliente activo. Términos de pago por defecto: "Net 30".
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	paymentTerms := in.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = "Net 30"
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:                  uuid.New().String(),
		CompanyName:         in.CompanyName,
		ContactPerson:       in.ContactPerson,
		Email:               in.Email,
		Phone:               in.Phone,
		Address:             in.Address,
		City:                in.City,
		State:               in.State,
		ZipCode:             in.ZipCode,
		BillingAddress:      in.BillingAddress,
		BillingCity:         in.BillingCity,
		BillingState:        in.BillingState,
		BillingZipCode:      in.BillingZipCode,
		CreditLimit:         in.CreditLimit,
		PaymentTerms:        paymentTerms,
		SpecialInstructions: in.SpecialInstructions,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente campo a campo.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		customer.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		customer.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = in.Address
	}
	if in.City != nil {
		customer.City = in.City
	}
	if in.State != nil {
		customer.State = in.State
	}
	if in.ZipCode != nil {
		customer.ZipCode = in.ZipCode
	}
	if in.BillingAddress != nil {
		customer.BillingAddress = in.BillingAddress
	}
	if in.BillingCity != nil {
		customer.BillingCity = in.BillingCity
	}
	if in.BillingState != nil {
		customer.BillingState = in.BillingState
	}
	if in.BillingZipCode != nil {
		customer.BillingZipCode = in.BillingZipCode
	}
	if in.CreditLimit != nil {
		customer.CreditLimit = in.CreditLimit
	}
	if in.PaymentTerms != nil {
		customer.PaymentTerms = *in.PaymentTerms
	}
	if in.SpecialInstructions != nil {
		customer.SpecialInstructions = in.SpecialInstructions
	}
	if in.IsActive != nil {
		customer.IsActive = *in.IsActive
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                  c.ID,
		CompanyName:         c.CompanyName,
		ContactPerson:       c.ContactPerson,
		Email:               c.Email,
		Phone:               c.Phone,
		Address:             c.Address,
		City:                c.City,
		State:               c.State,
		ZipCode:             c.ZipCode,
		BillingAddress:      c.BillingAddress,
		BillingCity:         c.BillingCity,
		BillingState:        c.BillingState,
		BillingZipCode:      c.BillingZipCode,
		CreditLimit:         c.CreditLimit,
		PaymentTerms:        c.PaymentTerms,
		SpecialInstructions: c.SpecialInstructions,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
