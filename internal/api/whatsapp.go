package api

import (
	"net/http"

	"github.com/shaharia-lab/salon-notify/internal/billing"
)

type whatsAppResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	MessageSID string `json:"messageSid"`
}

func (s *Server) handleSendWhatsAppBill(w http.ResponseWriter, r *http.Request) {
	var req billing.WhatsAppBillRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.whatsAppLog.Warn("invalid whatsapp payload", "error", err)
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	res, err := s.whatsAppSvc.SendBill(r.Context(), &req)
	if err != nil {
		s.writeServiceError(w, s.whatsAppLog, err)
		return
	}

	writeJSON(w, http.StatusOK, whatsAppResponse{
		Success:    true,
		Message:    res.Message,
		MessageSID: res.MessageSID,
	})
}
