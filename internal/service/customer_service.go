package service

import (
	"strings"

	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"
)

// CustomerService manages customers and their stored shipping addresses.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a customer service.
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput creates or updates a customer.
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerAddressInput adds a stored address.
type CustomerAddressInput struct {
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// Create creates a customer.
func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	customer := &models.Customer{
		Name:  name,
		Email: strings.TrimSpace(strings.ToLower(input.Email)),
		Phone: strings.TrimSpace(input.Phone),
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update updates a customer's contact fields.
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		customer.Name = name
	}
	customer.Email = strings.TrimSpace(strings.ToLower(input.Email))
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Addresses = nil
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Get fetches a customer with addresses.
func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// AddAddress stores a new shipping address for a customer.
func (s *CustomerService) AddAddress(customerID uint, input CustomerAddressInput) (*models.CustomerAddress, error) {
	if _, err := s.Get(customerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Recipient) == "" ||
		strings.TrimSpace(input.Line1) == "" ||
		strings.TrimSpace(input.City) == "" {
		return nil, ErrValidation
	}
	address := &models.CustomerAddress{
		CustomerID: customerID,
		Label:      strings.TrimSpace(input.Label),
		Recipient:  strings.TrimSpace(input.Recipient),
		Phone:      strings.TrimSpace(input.Phone),
		Line1:      strings.TrimSpace(input.Line1),
		Line2:      strings.TrimSpace(input.Line2),
		City:       strings.TrimSpace(input.City),
		Province:   strings.TrimSpace(input.Province),
		PostalCode: strings.TrimSpace(input.PostalCode),
	}
	if err := s.customerRepo.CreateAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

// ListAddresses lists a customer's stored addresses.
func (s *CustomerService) ListAddresses(customerID uint) ([]models.CustomerAddress, error) {
	if _, err := s.Get(customerID); err != nil {
		return nil, err
	}
	return s.customerRepo.ListAddresses(customerID)
}

// DeleteAddress soft-deletes a stored address. Orders that snapshotted it
// keep their copy.
func (s *CustomerService) DeleteAddress(customerID, addressID uint) error {
	address, err := s.customerRepo.GetActiveAddressByID(addressID)
	if err != nil {
		return err
	}
	if address == nil || address.CustomerID != customerID {
		return ErrNotFound
	}
	return s.customerRepo.DeleteAddress(addressID)
}
