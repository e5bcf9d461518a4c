package controllers

import (
	"net/http"

	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		int	true	"ID of the envelope"
// @Router			/envelopes/{id}/withdraw [options]
func (co Controller) OptionsWithdraw(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400		{object}	httpError
// @Param			from	path		int	true	"ID of the source envelope"
// @Param			to		path		int	true	"ID of the destination envelope"
// @Router			/envelopes/transfer/{from}/{to} [options]
func (co Controller) OptionsTransfer(c *gin.Context) {
	var uri URITransfer
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Withdraw from envelope
// @Description	Withdraws an amount from the envelope. The amount must be positive and not exceed the budget of the envelope.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Envelope
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		int				true	"ID of the envelope"
// @Param			amount	body		AmountEditable	true	"Amount"
// @Router			/envelopes/{id}/withdraw [post]
func (co Controller) Withdraw(c *gin.Context) {
	var uri URIID
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	// Unknown envelopes are reported before invalid amounts
	_, err := co.Store.Envelope(c.Request.Context(), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	var editable AmountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	if editable.Amount == nil {
		abort(c, models.ErrAmountNotPositive)
		return
	}

	envelope, err := co.Store.Withdraw(c.Request.Context(), uri.ID, editable.Amount.Decimal)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// @Summary		Transfer between envelopes
// @Description	Moves an amount from one envelope to another. Both balances are updated together or not at all.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransferResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			from	path		int				true	"ID of the source envelope"
// @Param			to		path		int				true	"ID of the destination envelope"
// @Param			amount	body		AmountEditable	true	"Amount"
// @Router			/envelopes/transfer/{from}/{to} [post]
func (co Controller) Transfer(c *gin.Context) {
	var uri URITransfer
	if err := bindURI(c, &uri); err != nil {
		abort(c, err)
		return
	}

	// Unknown envelopes are reported before invalid amounts
	for _, id := range []uint{uri.From, uri.To} {
		_, err := co.Store.Envelope(c.Request.Context(), id)
		if err != nil {
			abort(c, err)
			return
		}
	}

	var editable AmountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	if editable.Amount == nil {
		abort(c, models.ErrAmountNotPositive)
		return
	}

	from, to, err := co.Store.Transfer(c.Request.Context(), uri.From, uri.To, editable.Amount.Decimal)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TransferResponse{
		Message:      "transfer successful",
		FromEnvelope: from,
		ToEnvelope:   to,
	})
}
