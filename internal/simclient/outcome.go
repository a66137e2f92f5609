package simclient

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind is the outcome classification, evaluated transport first.
type Kind int

const (
	KindTransport   Kind = iota // request never completed
	KindApplication             // non-2xx response
	KindSuccess                 // 2xx response
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindApplication:
		return "http_error"
	default:
		return "network_error"
	}
}

// Outcome describes one finished call. It is produced per call and then
// handed to whoever renders it.
type Outcome struct {
	RequestID   string
	Kind        Kind
	Duration    time.Duration
	StatusCode  int // 0 when no response was received
	ContentType string
	Body        any  // parsed JSON value or plain text
	BodyJSON    bool // Body came from JSON, so nil means JSON null
	Truncated   bool // Body is text cut at maxBodyBytes
	Err         error
}

// OK reports a 2xx response.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Millis is the elapsed time in whole milliseconds.
func (o Outcome) Millis() int64 {
	return o.Duration.Milliseconds()
}

// ErrorMessage is the transport error text, or "".
func (o Outcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// TruncatedMarker ends the display of a body that was cut.
const TruncatedMarker = "\n…(truncated)"

// PrettyBody renders the body for display: JSON values indented by two
// spaces, text as is.
func (o Outcome) PrettyBody() string {
	if o.BodyJSON {
		return indentJSON(o.Body)
	}
	switch b := o.Body.(type) {
	case nil:
		return ""
	case string:
		if o.Truncated {
			return b + TruncatedMarker
		}
		return b
	default:
		return indentJSON(b)
	}
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
