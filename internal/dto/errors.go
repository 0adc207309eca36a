package dto

// BalanceErrorDTO is the 422 body for sufficiency failures.
type BalanceErrorDTO struct {
	Error     string `json:"error" example:"insufficient balance"`
	PartnerID string `json:"partner_id" example:"aff_1"`
	Requested int64  `json:"requested" example:"4000"`
	Available int64  `json:"available" example:"3000"`
	Minimum   int64  `json:"minimum,omitempty" example:"5000"`
}
