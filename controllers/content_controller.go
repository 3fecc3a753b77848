package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"perfume-shop/models"
	"perfume-shop/services"
)

type ContentController struct {
	testimonials *services.TestimonialService
	subscribers  *services.SubscriberService
}

func NewContentController(testimonials *services.TestimonialService, subscribers *services.SubscriberService) *ContentController {
	return &ContentController{testimonials: testimonials, subscribers: subscribers}
}

// @Summary List testimonials
// @Description Returns an empty list when no database is configured
// @Tags Content
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} models.ErrorResponse
// @Router /api/testimonials [get]
func (ctrl *ContentController) ListTestimonials(c *gin.Context) {
	testimonials, err := ctrl.testimonials.ListTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// @Summary Subscribe to the newsletter
// @Tags Content
// @Accept json
// @Produce json
// @Param request body models.SubscribeRequest true "Subscriber"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/subscribe [post]
func (ctrl *ContentController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, subscribeBindDetail(err))
		return
	}

	if err := ctrl.subscribers.Subscribe(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

const detailSubscribeBody = "request body must be a JSON object with a string email and optional string tagged_source"

// subscribeBindDetail tells a missing email apart from a body of the wrong shape.
func subscribeBindDetail(err error) string {
	if errors.Is(err, io.EOF) {
		return "email is required"
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" && fe.Tag() == "required" {
				return "email is required"
			}
		}
	}
	return detailSubscribeBody
}
