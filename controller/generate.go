package controller

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/OnurLexa/DreamGen/logic"
	"github.com/OnurLexa/DreamGen/models"
	"github.com/OnurLexa/DreamGen/stability"
)

type GenerateHandler struct {
	Pipeline *logic.Pipeline
}

func NewGenerateHandler(p *logic.Pipeline) *GenerateHandler {
	return &GenerateHandler{Pipeline: p}
}

// Generate runs one synchronous text-to-image request through the pipeline
// and returns the delivered images base64-encoded.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var form models.GenerateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		zap.L().Error("Generate with invalid param", zap.Error(err))
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, CodeInvalidParams)
			return
		}
		ResponseErrorWithMsg(c, CodeInvalidParams, removeTopStruct(errs.Translate(trans)))
		return
	}

	resp := &httpResponder{}
	err := h.Pipeline.Handle(c.Request.Context(), form.ToRequest(), resp)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ResponseSuccess(c, resp.result())
}

func (h *GenerateHandler) respondError(c *gin.Context, err error) {
	var cooldownErr *logic.CooldownError
	var upstreamErr *stability.UpstreamError
	var decodeErr *stability.DecodeError

	switch {
	case errors.As(err, &cooldownErr):
		ResponseErrorWithMsg(c, CodeCooldownActive,
			fmt.Sprintf("please wait %d seconds and try again", cooldownErr.Remaining))
	case errors.Is(err, logic.ErrBlocked):
		ResponseError(c, CodePromptBlocked)
	case errors.As(err, &upstreamErr):
		ResponseErrorWithMsg(c, CodeUpstreamError, upstreamErr.Error())
	case errors.As(err, &decodeErr):
		ResponseErrorWithMsg(c, CodeDecodeError, decodeErr.Error())
	case errors.Is(err, logic.ErrEmptyResult):
		ResponseError(c, CodeEmptyResult)
	default:
		ResponseError(c, CodeServerBusy)
	}
}

// httpResponder collects pipeline output for a synchronous JSON reply.
// Ack is a no-op: the HTTP caller just keeps the connection open.
type httpResponder struct {
	notices []string
	images  []models.GenerateImage
}

func (r *httpResponder) Ack() error { return nil }

func (r *httpResponder) Reject(msg string) error {
	// terminal rejections are mapped to response codes by the handler
	return nil
}

func (r *httpResponder) Notify(msg string) error {
	r.notices = append(r.notices, msg)
	return nil
}

func (r *httpResponder) Deliver(idx int, art models.Artifact, req models.GenerationRequest) error {
	r.images = append(r.images, models.GenerateImage{
		B64:          base64.StdEncoding.EncodeToString(art.Data),
		Seed:         art.Seed,
		FinishReason: art.FinishReason,
	})
	return nil
}

func (r *httpResponder) result() *models.GenerateResult {
	return &models.GenerateResult{Images: r.images, Notices: r.notices}
}
