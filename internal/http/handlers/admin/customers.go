package admin

import (
	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCustomer fetches one customer with addresses.
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid customer id")
		return
	}
	customer, err := h.CustomerService.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// CreateCustomer creates a customer.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req service.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	customer, err := h.CustomerService.Create(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// UpdateCustomer updates a customer's contact fields.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid customer id")
		return
	}
	var req service.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	customer, err := h.CustomerService.Update(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// ListCustomerAddresses lists a customer's stored addresses.
func (h *Handler) ListCustomerAddresses(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid customer id")
		return
	}
	addresses, err := h.CustomerService.ListAddresses(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, addresses)
}

// CreateCustomerAddress stores a new address for a customer.
func (h *Handler) CreateCustomerAddress(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid customer id")
		return
	}
	var req service.CustomerAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	address, err := h.CustomerService.AddAddress(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, address)
}

// DeleteCustomerAddress soft-deletes a stored address.
func (h *Handler) DeleteCustomerAddress(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid customer id")
		return
	}
	addressID, ok := shared.ParamUint(c, "address_id")
	if !ok {
		response.BadRequest(c, "invalid address id")
		return
	}
	if err := h.CustomerService.DeleteAddress(id, addressID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
