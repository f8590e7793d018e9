package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/service"
)

// --- tickets ---

// @Summary  Create ticket
// @Tags     tickets
// @Param    req body  CreateTicketRequest true "payload"
// @Success  201 {object} domain.Ticket
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /tickets [post]
func handleCreateTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		t, err := req.toDomain()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		created, err := svcs.Sales.CreateTicket(c.Request.Context(), t)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  List all tickets
// @Tags     tickets
// @Success  200 {array} domain.Ticket
// @Router   /tickets [get]
func handleListTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		tickets, err := svcs.Sales.ListTickets(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(tickets))
	}
}

// @Summary  Filter tickets
// @Tags     tickets
// @Param    page           query int    false "page number"
// @Param    per_page       query int    false "page size"
// @Param    chair_number   query int    false "exact match"
// @Param    ticket_type    query string false "exact match"
// @Param    payment_status query string false "exact match"
// @Success  200 {object} pagination.Page[domain.Ticket]
// @Failure  400 {object} ErrorResponse
// @Router   /tickets/filter [get]
func handleFilterTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		chairNumber, ok := optInt(c, "chair_number")
		if !ok {
			return
		}

		f := domain.TicketFilter{
			ChairNumber:   chairNumber,
			TicketType:    optString(c, "ticket_type"),
			PaymentStatus: optString(c, "payment_status"),
		}

		page, err := svcs.Sales.FilterTickets(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count tickets
// @Tags     tickets
// @Param    chair_number   query int    false "exact match"
// @Param    ticket_type    query string false "exact match"
// @Param    payment_status query string false "exact match"
// @Success  200 {object} CountResponse
// @Router   /tickets/count [get]
func handleCountTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		chairNumber, ok := optInt(c, "chair_number")
		if !ok {
			return
		}

		f := domain.TicketFilter{
			ChairNumber:   chairNumber,
			TicketType:    optString(c, "ticket_type"),
			PaymentStatus: optString(c, "payment_status"),
		}

		n, err := svcs.Sales.CountTickets(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

// @Summary  Get ticket
// @Tags     tickets
// @Param    id  path  int  true  "Ticket ID"
// @Success  200 {object} domain.Ticket
// @Failure  404 {object} ErrorResponse
// @Router   /tickets/{id} [get]
func handleGetTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		t, err := svcs.Sales.GetTicket(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// @Summary  Update ticket (partial)
// @Tags     tickets
// @Param    id  path  int  true  "Ticket ID"
// @Param    req body  UpdateTicketRequest true "fields to change"
// @Success  200 {object} domain.Ticket
// @Failure  404 {object} ErrorResponse
// @Router   /tickets/{id} [put]
func handleUpdateTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		patch, err := req.toPatch()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		t, err := svcs.Sales.UpdateTicket(c.Request.Context(), id, patch)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// @Summary  Delete ticket
// @Tags     tickets
// @Param    id  path  int  true  "Ticket ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /tickets/{id} [delete]
func handleDeleteTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Sales.DeleteTicket(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "ticket deleted"})
	}
}

// --- payment details ---

// @Summary  Create payment details
// @Tags     payments
// @Param    req body  CreatePaymentRequest true "payload"
// @Success  201 {object} domain.PaymentDetails
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /payments [post]
func handleCreatePayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		p, err := req.toDomain()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		created, err := svcs.Sales.CreatePayment(c.Request.Context(), p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  List all payment details
// @Tags     payments
// @Success  200 {array} domain.PaymentDetails
// @Router   /payments [get]
func handleListPayments(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := svcs.Sales.ListPayments(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(payments))
	}
}

// @Summary  Filter payment details
// @Tags     payments
// @Param    page                    query int    false "page number"
// @Param    per_page                query int    false "page size"
// @Param    transaction_id_contains query string false "substring match"
// @Param    payment_method          query string false "exact match"
// @Param    status                  query string false "exact match"
// @Success  200 {object} pagination.Page[domain.PaymentDetails]
// @Failure  400 {object} ErrorResponse
// @Router   /payments/filter [get]
func handleFilterPayments(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		f := domain.PaymentFilter{
			TransactionIDContains: optString(c, "transaction_id_contains"),
			PaymentMethod:         optString(c, "payment_method"),
			Status:                optString(c, "status"),
		}

		page, err := svcs.Sales.FilterPayments(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count payment details
// @Tags     payments
// @Param    transaction_id_contains query string false "substring match"
// @Param    payment_method          query string false "exact match"
// @Param    status                  query string false "exact match"
// @Success  200 {object} CountResponse
// @Router   /payments/count [get]
func handleCountPayments(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := domain.PaymentFilter{
			TransactionIDContains: optString(c, "transaction_id_contains"),
			PaymentMethod:         optString(c, "payment_method"),
			Status:                optString(c, "status"),
		}

		n, err := svcs.Sales.CountPayments(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

// @Summary  Get payment details
// @Tags     payments
// @Param    id  path  int  true  "Payment ID"
// @Success  200 {object} domain.PaymentDetails
// @Failure  404 {object} ErrorResponse
// @Router   /payments/{id} [get]
func handleGetPayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		p, err := svcs.Sales.GetPayment(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Update payment details (partial)
// @Tags     payments
// @Param    id  path  int  true  "Payment ID"
// @Param    req body  UpdatePaymentRequest true "fields to change"
// @Success  200 {object} domain.PaymentDetails
// @Failure  404 {object} ErrorResponse
// @Router   /payments/{id} [put]
func handleUpdatePayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		patch, err := req.toPatch()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		p, err := svcs.Sales.UpdatePayment(c.Request.Context(), id, patch)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Delete payment details
// @Tags     payments
// @Param    id  path  int  true  "Payment ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /payments/{id} [delete]
func handleDeletePayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Sales.DeletePayment(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "payment details deleted"})
	}
}
