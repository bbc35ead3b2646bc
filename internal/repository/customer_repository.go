package repository

import (
	"errors"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// CustomerRepository is the data access interface for customers and their
// stored addresses.
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	GetActiveAddressByID(id uint) (*models.CustomerAddress, error)
	ListAddresses(customerID uint) ([]models.CustomerAddress, error)
	CreateAddress(address *models.CustomerAddress) error
	DeleteAddress(id uint) error
}

// GormCustomerRepository is the GORM implementation.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetByID fetches a customer with addresses.
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Preload("Addresses").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create inserts a customer.
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update saves a customer.
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// GetActiveAddressByID fetches a stored address. Soft-deleted rows are
// filtered by gorm's default scope, so checkout never sees them.
func (r *GormCustomerRepository) GetActiveAddressByID(id uint) (*models.CustomerAddress, error) {
	var address models.CustomerAddress
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// ListAddresses lists a customer's stored addresses.
func (r *GormCustomerRepository) ListAddresses(customerID uint) ([]models.CustomerAddress, error) {
	var addresses []models.CustomerAddress
	if err := r.db.Where("customer_id = ?", customerID).Order("id asc").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress inserts a stored address.
func (r *GormCustomerRepository) CreateAddress(address *models.CustomerAddress) error {
	return r.db.Create(address).Error
}

// DeleteAddress soft-deletes a stored address.
func (r *GormCustomerRepository) DeleteAddress(id uint) error {
	return r.db.Delete(&models.CustomerAddress{}, id).Error
}
