package v1

import (
	"errors"
	"strings"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SelectionHandler struct {
	selectionUC domain.SelectionUsecase
}

// NewSelectionHandler registers the selection route (public). The strict
// rate limiter guards this endpoint specifically.
func NewSelectionHandler(public *gin.RouterGroup, selectionUC domain.SelectionUsecase, limiter gin.HandlerFunc) {
	handler := &SelectionHandler{selectionUC: selectionUC}

	public.POST("/seleccionar-tutor", limiter, handler.Submit)
}

// SelectTutorRequest is the submission payload. Field names are fixed by
// the frontend's form contract.
type SelectTutorRequest struct {
	Tutor struct {
		Nombre   string `json:"Nombre" binding:"required"`
		Apellido string `json:"Apellido" binding:"required"`
	} `json:"tutor" binding:"required"`
	Alumno struct {
		Nombre      string `json:"nombre"`
		Apellido    string `json:"apellido"`
		AnioCarrera string `json:"anioCarrera"`
		Carrera     string `json:"carrera"`
		Correo      string `json:"correo"`
		Celular     string `json:"celular"`
		Linkedin    string `json:"linkedin"`
		Sexo        string `json:"sexo"`
	} `json:"alumno" binding:"required"`
}

// Submit godoc
// @Summary      Submit a mentor selection
// @Description  Registers the student's mentor choice: rejects duplicate requests, decrements the mentor's capacity and appends an audit row. Both parties are notified by email, best-effort.
// @Tags         tutores
// @Accept       json
// @Produce      json
// @Param        seleccion  body      SelectTutorRequest  true  "Selected mentor and student form"
// @Success      200        {object}  response.Ack
// @Failure      400        {object}  response.ErrorBody
// @Failure      404        {object}  response.ErrorBody
// @Failure      409        {object}  response.ErrorBody
// @Failure      503        {object}  response.ErrorBody
// @Router       /seleccionar-tutor [post]
func (h *SelectionHandler) Submit(c *gin.Context) {
	var req SelectTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Faltan datos de tutor o alumno"))
		return
	}

	key := domain.MentorKey{
		FirstName: req.Tutor.Nombre,
		LastName:  req.Tutor.Apellido,
	}
	requester := &domain.RequesterProfile{
		Name:          req.Alumno.Nombre,
		Surname:       req.Alumno.Apellido,
		YearInProgram: req.Alumno.AnioCarrera,
		Program:       req.Alumno.Carrera,
		Email:         req.Alumno.Correo,
		Phone:         req.Alumno.Celular,
		Sex:           req.Alumno.Sexo,
		LinkedinURL:   req.Alumno.Linkedin,
	}

	if _, err := h.selectionUC.SubmitSelection(c.Request.Context(), key, requester); err != nil {
		c.Error(mapSelectionError(err))
		return
	}

	response.OK(c, 200, "Selección registrada y cupo descontado")
}

// mapSelectionError translates the workflow taxonomy to HTTP. Everything
// except notification failures reaches the client with a specific message.
func mapSelectionError(err error) *apperror.AppError {
	var valErr *domain.ValidationError
	var dupErr *domain.DuplicateRequestError

	switch {
	case errors.As(err, &valErr):
		return apperror.BadRequest(strings.Join(valErr.Messages, ". "))
	case errors.As(err, &dupErr):
		return apperror.Conflict(
			"Ya tienes una solicitud de tutor registrada",
			&response.PriorRequest{Fecha: dupErr.PriorDate, Tutor: dupErr.PriorMentor},
		)
	case errors.Is(err, domain.ErrMentorNotFound):
		return apperror.NotFound("Tutor no encontrado")
	case errors.Is(err, domain.ErrCapacityExhausted):
		return apperror.Conflict("El tutor no tiene cupo disponible", nil)
	case errors.Is(err, domain.ErrDataSourceUnavailable):
		return apperror.Unavailable("No se pudo registrar la selección. Intentá nuevamente más tarde.", err)
	default:
		return apperror.Internal(err)
	}
}
