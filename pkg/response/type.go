package response

// Resp is the success envelope: {"data": ...}.
type Resp struct {
	Data any `json:"data"`
}

// ErrorResp is the failure envelope. Details is only filled in development.
type ErrorResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
