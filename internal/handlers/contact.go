package handlers

import (
	"log/slog"
	"net/http"

	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/transport"
)

type ContactRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	PracticeArea string `json:"practiceArea" validate:"omitempty,practice_area"`
	Subject      string `json:"subject" validate:"required"`
	Message      string `json:"message" validate:"required,min=10"`
}

func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("contact submit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("contact submit: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", fieldErrors(s, err))
		return
	}

	contact := s.Store.CreateContact(r.Context(), store.ContactInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PracticeArea: req.PracticeArea,
		Subject:      req.Subject,
		Message:      req.Message,
	})

	if s.Mailer != nil {
		if err := s.Mailer.SendContactNotification(r.Context(), contact); err != nil {
			log.Warn("contact submit: notification failed", slog.String("error", err.Error()))
		}
	}
	s.track(r, "contact_form_submitted", map[string]string{
		"practice_area": contact.PracticeArea,
	})

	log.Info("contact submit: stored", slog.String("contact_id", contact.ID))
	transport.WriteSuccess(w, http.StatusCreated, "Thank you for reaching out. We will respond within one business day.")
}
