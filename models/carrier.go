package models

// CarrierProfile is the canonical carrier shape derived from an FMCSA
// registry response. It is produced transiently per verification request and
// never persisted. Absent upstream fields are filled with defaults
// ("Unknown" for the legal name, "N/A" elsewhere).
type CarrierProfile struct {
	MCNumber  string `json:"mc_number"`
	LegalName string `json:"legal_name"`
	DOTNumber string `json:"dot_number"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// VerificationResult is the outcome of a carrier verification attempt.
// Verified is true only when the registry returned a well-shaped carrier
// object; upstream errors and timeouts yield Verified=false with the error
// text in Message, never a transport-level failure to the API caller.
type VerificationResult struct {
	Verified bool            `json:"verified"`
	Carrier  *CarrierProfile `json:"carrier_data"`
	Message  string          `json:"message"`
}
