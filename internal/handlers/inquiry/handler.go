package inquiry

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/inquiry/model/dto"
	"salon/internal/domains/inquiry/service"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/anliegen_melden", handler.ReportInquiry)
}

// ReportInquiry forwards a contact-form message to the business mailbox.
func (handler *Handler) ReportInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportInquiry")
	defer scope.End()

	req := dto.InquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate inquiry request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Submit(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit inquiry")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Successfully sent question")
}
