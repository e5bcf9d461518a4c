package controllers

import (
	"net/http"

	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// GET takes the ID of an envelope, DELETE the ID of a transaction
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:envelopeId", co.GetEnvelopeTransactions)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Description	GET lists the transactions of the envelope with this ID, DELETE deletes the transaction with this ID.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		int	true	"ID of the envelope or transaction"
// @Router			/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get transactions
// @Description	Returns all transactions. The list can be sorted and filtered by description.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			sort		query	string	false	"Sort order"	Enums(amount-asc, amount-desc, date-asc, date-desc, description-asc, description-desc)
// @Param			description	query	string	false	"Glob pattern for the description, e.g. *rent*"
// @Router			/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, httputil.ErrInvalidQueryString)
		return
	}

	transactions, err := co.Store.Transactions(c.Request.Context(), store.TransactionFilter{
		Sort:        filter.Sort,
		Description: filter.Description,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Transactions: transactions})
}

// @Summary		Get transactions for envelope
// @Description	Returns all transactions with the envelope ID, including those whose envelope has been deleted. An existing envelope without transactions returns an empty list.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelopeId	path		int	true	"ID of the envelope"
// @Router			/transactions/{envelopeId} [get]
func (co Controller) GetEnvelopeTransactions(c *gin.Context) {
	var uri URIEnvelopeID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	transactions, err := co.Store.EnvelopeTransactions(c.Request.Context(), uri.EnvelopeID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Transactions: transactions})
}

// @Summary		Create transaction
// @Description	Creates a new transaction. The envelope is not checked for existence.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionCreateResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	if editable.EnvelopeID == nil {
		abort(c, models.ErrEnvelopeIDMissing)
		return
	}

	if editable.Amount == nil {
		abort(c, models.ErrAmountNotPositive)
		return
	}

	transaction := editable.model()
	err := co.Store.CreateTransaction(c.Request.Context(), &transaction)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionCreateResponse{TransactionID: transaction.ID})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the transaction"
// @Router			/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	err := co.Store.DeleteTransaction(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "transaction deleted"})
}
