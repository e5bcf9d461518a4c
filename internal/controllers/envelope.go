package controllers

import (
	"net/http"

	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func (co Controller) RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsEnvelopeList)
		r.GET("", co.GetEnvelopes)
		r.POST("", co.CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", co.OptionsEnvelopeDetail)
		r.GET("/:id", co.GetEnvelope)
		r.PUT("/:id", co.UpdateEnvelope)
		r.DELETE("/:id", co.DeleteEnvelope)
		r.OPTIONS("/:id/withdraw", co.OptionsWithdraw)
		r.POST("/:id/withdraw", co.Withdraw)
	}

	// Transfers between envelopes
	{
		r.OPTIONS("/transfer/:from/:to", co.OptionsTransfer)
		r.POST("/transfer/:from/:to", co.Transfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/envelopes [options]
func (co Controller) OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the envelope"
// @Router			/envelopes/{id} [options]
func (co Controller) OptionsEnvelopeDetail(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	_, err := co.Store.Envelope(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get envelopes
// @Description	Returns all envelopes and the sum of their budgets
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		500	{object}	httpError
// @Router			/envelopes [get]
func (co Controller) GetEnvelopes(c *gin.Context) {
	envelopes, err := co.Store.Envelopes(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	total, err := co.Store.TotalBudget(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Envelopes:   envelopes,
		TotalBudget: total,
	})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	models.Envelope
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the envelope"
// @Router			/envelopes/{id} [get]
func (co Controller) GetEnvelope(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	envelope, err := co.Store.Envelope(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// @Summary		Create envelope
// @Description	Creates a new envelope. The title must not be empty, the budget must be a number that is not negative.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Envelope
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/envelopes [post]
func (co Controller) CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	if editable.Title == nil {
		abort(c, models.ErrTitleEmpty)
		return
	}

	if editable.Budget == nil {
		abort(c, models.ErrBudgetNegative)
		return
	}

	envelope := models.Envelope{
		Title:  *editable.Title,
		Budget: editable.Budget.Decimal,
	}

	err := co.Store.CreateEnvelope(c.Request.Context(), &envelope)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope)
}

// @Summary		Update envelope
// @Description	Updates an existing envelope. Only fields present in the body are updated. A budget of 0 is applied like any other value.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Envelope
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		int					true	"ID of the envelope"
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/envelopes/{id} [put]
func (co Controller) UpdateEnvelope(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	_, err := co.Store.Envelope(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var editable EnvelopeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	// A field that is present must carry a value, null is not
	// a valid title or budget
	var update store.EnvelopeUpdate
	if slices.Contains(updateFields, "Title") {
		if editable.Title == nil {
			abort(c, models.ErrTitleEmpty)
			return
		}
		update.Title = editable.Title
	}

	if slices.Contains(updateFields, "Budget") {
		if editable.Budget == nil {
			abort(c, models.ErrBudgetNegative)
			return
		}
		update.Budget = &editable.Budget.Decimal
	}

	envelope, err := co.Store.UpdateEnvelope(c.Request.Context(), uri.ID, update)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. Transactions for the envelope are not deleted.
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the envelope"
// @Router			/envelopes/{id} [delete]
func (co Controller) DeleteEnvelope(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	err := co.Store.DeleteEnvelope(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "envelope deleted"})
}
