package v1

import (
	"net/http"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MentorHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewMentorHandler registers the mentor catalog routes (public)
func NewMentorHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &MentorHandler{catalogUC: catalogUC}

	public.GET("/tutores", handler.List)
}

// MentorResponse mirrors the spreadsheet's public header names. The wire
// shape is fixed: the frontend keys off these exact strings. The identity
// document never appears here.
type MentorResponse struct {
	Nombre             string `json:"Nombre"`
	Apellido           string `json:"Apellido"`
	Sexo               string `json:"Sexo"`
	Edad               string `json:"Edad"`
	Graduacion         string `json:"Graduación"`
	Carrera            string `json:"Carrera"`
	Celular            string `json:"Celular"`
	Mail               string `json:"Mail"`
	Lugar              string `json:"Lugar"`
	SituacionLaboral   string `json:"Situación laboral"`
	Empresa            string `json:"Empresa"`
	Cargo              string `json:"Cargo"`
	Linkedin           string `json:"Linkedin"`
	CantidadAsesorados int    `json:"Cantidad de asesorados"`
	Foto               string `json:"Foto"`
	CupoDisponible     int    `json:"Cupo disponible"`
}

func toMentorResponse(m domain.MentorRecord) MentorResponse {
	return MentorResponse{
		Nombre:             m.FirstName,
		Apellido:           m.LastName,
		Sexo:               m.Sex,
		Edad:               m.Age,
		Graduacion:         m.GraduationYear,
		Carrera:            m.Program,
		Celular:            m.Phone,
		Mail:               m.Email,
		Lugar:              m.Location,
		SituacionLaboral:   m.EmploymentStatus,
		Empresa:            m.Employer,
		Cargo:              m.Title,
		Linkedin:           m.LinkedinURL,
		CantidadAsesorados: m.CurrentAdvisees,
		Foto:               m.PhotoURL,
		CupoDisponible:     m.AvailableCapacity(),
	}
}

// List godoc
// @Summary      List mentors with available capacity
// @Description  Returns every mentor with available capacity, in spreadsheet row order. Mentors with no capacity left are filtered out.
// @Tags         tutores
// @Produce      json
// @Success      200  {array}   MentorResponse
// @Failure      503  {object}  response.ErrorBody
// @Router       /tutores [get]
func (h *MentorHandler) List(c *gin.Context) {
	mentors, err := h.catalogUC.ListAvailableMentors(c.Request.Context())
	if err != nil {
		// Degrade gracefully: generic message, the client shows a
		// "could not load" state.
		c.Error(apperror.Unavailable("No se pudo cargar la lista de tutores", err))
		return
	}

	out := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, toMentorResponse(m))
	}
	c.JSON(http.StatusOK, out)
}
