package appointment

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/service"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/terminanfrage", handler.BookAppointment)
	router.Get("/booked-slots", handler.GetBookedSlots)
	router.Delete("/terminabsage/{id}", handler.CancelAppointment)
}

// BookAppointment reserves the requested slot and answers with the
// confirmation code the client later uses to cancel.
func (handler *Handler) BookAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithError(writer, err)

		return
	}

	confirmation, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment booked successfully")

	response.WithJSON(writer, http.StatusOK, dto.BookingCreatedResponse{ID: confirmation.ConfirmationCode})
}

// GetBookedSlots lists the occupied slots as a bare array so the booking
// calendar can grey them out. No personal data leaves this endpoint.
func (handler *Handler) GetBookedSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookedSlots")
	defer scope.End()

	slots, err := handler.service.ListSlots(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list booked slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}

// CancelAppointment frees the slot held by the given confirmation code.
func (handler *Handler) CancelAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	confirmationCode := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, confirmationCode); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("confirmationCode", confirmationCode).Msg("failed to cancel appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment cancelled successfully")

	response.WithMessage(writer, http.StatusOK, "Appointment deleted successfully")
}
