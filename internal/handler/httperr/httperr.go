package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the id assigned by the logging middleware.
const RequestIDHeader = "X-Request-ID"

// Response is the JSON body of every error reply.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

// NewResponse builds the error body for c, echoing the request id when one
// was assigned.
func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.RequestID = c.Writer.Header().Get(RequestIDHeader)
	return resp
}

// AbortWithError keeps err on the gin context for logging and renders msg to
// the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
