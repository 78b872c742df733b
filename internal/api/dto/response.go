package dto

// Response status values the storefront clients key on.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Envelope is the uniform response body: every success and failure carries
// msg, status and data.
type Envelope struct {
	Msg    string `json:"msg"`
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Success builds a success envelope.
func Success(msg string, data any) Envelope {
	return Envelope{Msg: msg, Status: StatusSuccess, Data: data}
}

// Failed builds a failure envelope; data is always null.
func Failed(msg string) Envelope {
	return Envelope{Msg: msg, Status: StatusFailed, Data: nil}
}
