package ask_partner_confirm

// ConfirmRequest HTTP request model
type ConfirmRequest struct {
	Action string `json:"action"`
}
