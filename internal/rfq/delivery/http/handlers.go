package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rfq-agent/pkg/response"
)

// Submit godoc
// @Summary     Generate an RFQ
// @Description Classifies the query, extracts its context and returns a templated RFQ.
// @Tags        RFQ
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Procurement query"
// @Success     200  {object} response.Resp{data=model.RfqResult}
// @Failure     400  {object} response.Resp "Bad Request - query is required"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rfq [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, req.toSubmitInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Analyze godoc
// @Summary     Classify a query
// @Description Returns the intent, keyword scores and context of a query without generating items.
// @Tags        RFQ
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Procurement query"
// @Success     200  {object} response.Resp{data=analyzeResp}
// @Failure     400  {object} response.Resp "Bad Request - query is required"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rfq/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toClassifyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Examples godoc
// @Summary     Example queries
// @Description Returns the popular categories and sample queries.
// @Tags        RFQ
// @Produce     json
// @Success     200 {object} response.Resp{data=examplesResp}
// @Router      /api/v1/rfq/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Examples(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Examples: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExamplesResp(output))
}

func (h *handler) badRequest(c *gin.Context, err error) {
	var se *schemaError
	if errors.As(err, &se) {
		response.ValidationError(c, se.Error(), se.details)
		return
	}
	response.Error(c, err, nil)
}
