package httpx

import (
	"bytes"
	"net/http"
)

// ResponseBuffer captures a handler's response so the caller can inspect
// the status before deciding whether to forward it.
type ResponseBuffer struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func NewResponseBuffer() *ResponseBuffer {
	return &ResponseBuffer{}
}

func (resp *ResponseBuffer) Status() int {
	return resp.status
}

func (resp *ResponseBuffer) Header() http.Header {
	if resp.header == nil {
		resp.header = http.Header{}
	}
	return resp.header
}

func (resp *ResponseBuffer) Body() []byte {
	return resp.body.Bytes()
}

func (resp *ResponseBuffer) Write(body []byte) (int, error) {
	return resp.body.Write(body)
}

func (resp *ResponseBuffer) WriteHeader(statusCode int) {
	resp.status = statusCode
}

// Flush replays the buffered response onto a real writer.
func (resp *ResponseBuffer) Flush(w http.ResponseWriter) error {
	header := w.Header()
	for key, value := range resp.header {
		header[key] = value
	}
	if resp.status != 0 {
		w.WriteHeader(resp.status)
	}
	_, err := w.Write(resp.body.Bytes())
	return err
}
