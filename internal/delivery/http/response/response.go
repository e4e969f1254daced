package response

import (
	"github.com/gin-gonic/gin"
)

// The wire shapes here are fixed: the frontend keys off these exact
// field names.

// Ack is the success envelope: { ok: true, mensaje }
type Ack struct {
	OK      bool   `json:"ok"`
	Mensaje string `json:"mensaje,omitempty"`
}

// PriorRequest is the prior-selection context echoed back on duplicate
// submissions so the client can tell the student when and with whom.
type PriorRequest struct {
	Fecha string `json:"fecha"`
	Tutor string `json:"tutor"`
}

// ErrorBody is the failure envelope: { error, solicitudPrevia? }
type ErrorBody struct {
	Error           string        `json:"error"`
	SolicitudPrevia *PriorRequest `json:"solicitudPrevia,omitempty"`
}

// OK sends a success response
func OK(c *gin.Context, code int, mensaje string) {
	c.JSON(code, Ack{OK: true, Mensaje: mensaje})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, prior *PriorRequest) {
	c.JSON(code, ErrorBody{Error: message, SolicitudPrevia: prior})
}
