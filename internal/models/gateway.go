package models

// GatewaySendRequest is the payload of one outbound message to the
// WhatsApp gateway.
type GatewaySendRequest struct {
	APIKey  string `json:"api_key"`
	Sender  string `json:"sender"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

// GatewaySendResponse is the gateway's reply. The gateway is reachable but
// can still refuse semantically (device offline, unpaired number); it then
// answers HTTP 200 with status=false and a human-readable reason in either
// message or msg depending on the gateway version.
type GatewaySendResponse struct {
	Status  *bool  `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Msg     string `json:"msg,omitempty"`
	ID      string `json:"id,omitempty"`
}

// Reason returns the best available failure description.
func (r *GatewaySendResponse) Reason() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Msg
}
