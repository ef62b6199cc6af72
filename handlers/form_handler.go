package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nwfth/forms-go/dto"
	"github.com/nwfth/forms-go/response"
	"github.com/nwfth/forms-go/services"
	"github.com/nwfth/forms-go/utils"
)

type FormHandler struct {
	forms *services.FormService
	mail  *services.MailService
}

func NewFormHandler(forms *services.FormService, mail *services.MailService) *FormHandler {
	return &FormHandler{forms: forms, mail: mail}
}

func sanitizeFilename(formType string) string {
	return strings.ReplaceAll(formType, " ", "_")
}

func formErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrFormNotDraft),
		errors.Is(err, services.ErrUnknownStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.forms.CreateForm(input)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.CreateFormResponse{
		Message:    "Form created successfully",
		InsertedID: form.ID,
	})
}

func (h *FormHandler) GetAllForms(c *gin.Context) {
	forms, err := h.forms.GetAllForms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch forms"})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetMyForms lists the forms owned by the authenticated user, matched on the
// display name the token carries.
func (h *FormHandler) GetMyForms(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	forms, err := h.forms.GetUserForms(claims.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch forms"})
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *FormHandler) GetFormByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return
	}

	form, err := h.forms.GetFormByID(id)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return
	}

	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.forms.UpdateForm(id, input)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.FormResponse{Message: "Form updated successfully", Form: *form})
}

func (h *FormHandler) UpdateFormStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return
	}

	var input dto.UpdateFormStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.forms.UpdateFormStatus(id, input.Status, claims.Email)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.FormResponse{Message: "Form status updated", Form: *form})
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return
	}

	if err := h.forms.DeleteForm(id); err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted successfully"})
}

// DownloadPDF streams the rendered form as an attachment.
func (h *FormHandler) DownloadPDF(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return
	}

	form, pdf, err := h.forms.RenderPDF(id)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_%d.pdf", sanitizeFilename(form.FormType), form.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// EmailPDF renders a form and mails it to the given recipient.
func (h *FormHandler) EmailPDF(c *gin.Context) {
	var input dto.EmailFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, pdf, err := h.forms.RenderPDF(input.ID)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.mail.SendFormSubmission(&form, pdf, input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Email sent successfully"})
}

func (h *FormHandler) GetSummary(c *gin.Context) {
	summary, err := h.forms.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
