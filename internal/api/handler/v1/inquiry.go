package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/nlsproduction/nls-api/internal/api/handler/v1/request"
	"github.com/nlsproduction/nls-api/internal/api/handler/v1/response"
	"github.com/nlsproduction/nls-api/internal/domain"
)

const confirmationPath = "/thanks"

type InquiryService interface {
	Submit(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error)
}

type InquiryHandler struct {
	svc InquiryService
}

func NewInquiryHandler(svc InquiryService) *InquiryHandler {
	return &InquiryHandler{
		svc: svc,
	}
}

// HandleSubmitInquiry godoc
// @Summary      Submit a contact inquiry
// @Description  Accepts the form-encoded contact form. A valid submission is persisted and redirected to the confirmation page. Validation failures return HTTP 200 with a field→message map so the form can re-render, and persist nothing.
// @Tags         inquiries
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        contact_name  formData  string  true   "contact name"
// @Param        contact_email formData  string  false  "contact email"
// @Param        guests        formData  int     false  "guest count"
// @Success      200  {object}  response.InquiryErrors
// @Success      303  {string}  string  "redirect to confirmation"
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /contact [post]
func (h *InquiryHandler) HandleSubmitInquiry(ctx *gin.Context) {
	var req request.SubmitInquiryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			// Conventional form-redisplay behavior: 200, not 4xx.
			ctx.JSON(http.StatusOK, response.InquiryErrors{
				Errors: messagesByField(fieldErrs),
			})
			return
		}

		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.Submit(ctx.Request.Context(), req.ToDomain()); err != nil {
		err = fmt.Errorf("v1.HandleSubmitInquiry -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, confirmationPath)
}

// HandleThanks godoc
// @Summary      Inquiry confirmation
// @Tags         inquiries
// @Produce      json
// @Success      200  {string}  string  "confirmation message"
// @Router       /thanks [get]
func (h *InquiryHandler) HandleThanks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your inquiry. We will get back to you shortly.",
	})
}

func messagesByField(errs validation.Errors) map[string]string {
	messages := make(map[string]string, len(errs))
	for field, err := range errs {
		messages[field] = err.Error()
	}

	return messages
}
