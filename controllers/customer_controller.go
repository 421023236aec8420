package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
)

type CustomerController struct {
	Store *services.MockStore
}

func NewCustomerController(store *services.MockStore) *CustomerController {
	return &CustomerController{Store: store}
}

// GET /api/customers
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.Store.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// GET /api/customers/:id
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	customer, err := ctrl.Store.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// DELETE /api/customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	customer, err := ctrl.Store.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusOK, customer, "Customer deleted", utils.SeverityInfo)
}
