package handler

import (
	bankingapp "github.com/bankcore/backend/internal/application/banking"
	"github.com/bankcore/backend/internal/domain/identity"
	"github.com/bankcore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account API endpoints nested under customers
type AccountHandler struct {
	BaseHandler
	accountService *bankingapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *bankingapp.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func (h *AccountHandler) pathIDs(c *gin.Context) (customerID, accountID uuid.UUID, ok bool) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return uuid.Nil, uuid.Nil, false
	}
	accountID, err = uuid.Parse(c.Param("accountId"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return customerID, accountID, true
}

// Create opens an account for a customer. The account number, open
// date, and zero starting balance are system-assigned.
//
// POST /api/v1/customers/:id/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req bankingapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, account)
}

// GetByID returns an account scoped to its owning customer. An account
// belonging to a different customer reads as not found.
//
// GET /api/v1/customers/:id/accounts/:accountId
func (h *AccountHandler) GetByID(c *gin.Context) {
	customerID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), customerID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, account)
}

// Update replaces both editable fields of an account, type and
// available balance, together.
//
// PUT /api/v1/customers/:id/accounts/:accountId
func (h *AccountHandler) Update(c *gin.Context) {
	customerID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req bankingapp.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), customerID, accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, account)
}

// Delete closes an account. Only managers may delete, and only credit
// card accounts or accounts with an exactly zero balance qualify.
//
// DELETE /api/v1/customers/:id/accounts/:accountId
func (h *AccountHandler) Delete(c *gin.Context) {
	customerID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	role, err := identity.ParseRole(middleware.GetJWTRole(c))
	if err != nil {
		h.Forbidden(c, "Insufficient role for this operation")
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), role, customerID, accountID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
