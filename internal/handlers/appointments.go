package handlers

import (
	"log/slog"
	"net/http"

	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/transport"
)

type AppointmentRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	PracticeArea  string `json:"practiceArea" validate:"required,practice_area"`
	PreferredDate string `json:"preferredDate" validate:"required,date"`
	PreferredTime string `json:"preferredTime" validate:"required,clock"`
	Description   string `json:"description"`
}

// SubmitAppointment records a consultation request. The preferred date and
// time express the visitor's wish; nothing is reserved and no calendar is
// consulted.
func (s *Server) SubmitAppointment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("appointment submit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("appointment submit: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", fieldErrors(s, err))
		return
	}

	appointment := s.Store.CreateAppointment(r.Context(), store.AppointmentInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		PracticeArea:  req.PracticeArea,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Description:   req.Description,
	})

	if s.Mailer != nil {
		if err := s.Mailer.SendAppointmentAcknowledgment(r.Context(), appointment); err != nil {
			log.Warn("appointment submit: acknowledgment failed", slog.String("error", err.Error()))
		}
	}
	s.track(r, "appointment_requested", map[string]string{
		"practice_area": appointment.PracticeArea,
	})

	log.Info("appointment submit: stored",
		slog.String("appointment_id", appointment.ID),
		slog.String("preferred_date", appointment.PreferredDate),
	)
	transport.WriteSuccess(w, http.StatusCreated, "Your appointment request has been received. We will confirm a time shortly.")
}
