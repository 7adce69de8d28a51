package api

import (
	"net/http"

	"github.com/shaharia-lab/salon-notify/internal/billing"
)

type checkoutResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BillAmount   string `json:"billAmount"`
	CustomerName string `json:"customerName"`
}

func (s *Server) handleSendCheckoutEmail(w http.ResponseWriter, r *http.Request) {
	var bill billing.CheckoutBill
	if err := decodeBody(w, r, &bill); err != nil {
		s.emailLog.Warn("invalid checkout payload", "error", err)
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	res, err := s.checkoutSvc.SendCheckoutEmail(r.Context(), &bill)
	if err != nil {
		s.writeServiceError(w, s.emailLog, err)
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		Success:      true,
		Message:      res.Message,
		BillAmount:   res.BillAmount,
		CustomerName: res.CustomerName,
	})
}
