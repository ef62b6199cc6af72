package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nwfth/forms-go/dto"
	"github.com/nwfth/forms-go/minio"
	"github.com/nwfth/forms-go/models"
	"github.com/nwfth/forms-go/pkg/formdoc"
	"github.com/nwfth/forms-go/repositories"
	"github.com/nwfth/forms-go/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound      = errors.New("form not found")
	ErrFormNotDraft      = errors.New("cannot delete non-draft form")
	ErrUnknownStatus     = errors.New("unknown form status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// allowedTransitions is the full lifecycle: a draft is submitted for
// approval, and a submitted form is approved or rejected. Approved and
// Rejected are terminal.
var allowedTransitions = map[models.FormStatus][]models.FormStatus{
	models.FormStatusDraft:   {models.FormStatusWaiting},
	models.FormStatusWaiting: {models.FormStatusApproved, models.FormStatusRejected},
}

type FormService struct {
	repo repositories.FormRepo
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{repo: repos.Form}
}

func (s *FormService) CreateForm(input dto.CreateFormDTO) (*models.Form, error) {
	status := models.FormStatusDraft
	if input.Status != "" {
		status = models.FormStatus(input.Status)
		if status != models.FormStatusDraft && status != models.FormStatusWaiting {
			return nil, ErrUnknownStatus
		}
	}

	form := &models.Form{
		FormType:   input.FormType,
		OwnerName:  input.OwnerName,
		Department: input.Department,
		Details:    datatypes.JSONMap(input.Details),
		Status:     status,
	}
	return form, s.repo.Create(form)
}

func (s *FormService) GetAllForms() ([]models.Form, error) {
	return s.repo.FindAll()
}

func (s *FormService) GetUserForms(ownerName string) ([]models.Form, error) {
	return s.repo.FindByOwner(ownerName)
}

func (s *FormService) GetFormByID(id uint) (models.Form, error) {
	form, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Form{}, ErrFormNotFound
		}
		return models.Form{}, err
	}
	return form, nil
}

// UpdateForm accepts edits in any status. Post-submission corrections are an
// accepted policy here; form type and status are not touched.
func (s *FormService) UpdateForm(id uint, input dto.UpdateFormDTO) (*models.Form, error) {
	form, err := s.GetFormByID(id)
	if err != nil {
		return nil, err
	}

	form.OwnerName = input.OwnerName
	form.Department = input.Department
	form.Details = datatypes.JSONMap(input.Details)

	if err := s.repo.Save(&form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormService) DeleteForm(id uint) error {
	form, err := s.GetFormByID(id)
	if err != nil {
		return err
	}
	if form.Status != models.FormStatusDraft {
		return ErrFormNotDraft
	}
	return s.repo.Delete(id)
}

// UpdateFormStatus performs a guarded lifecycle transition and logs it with
// the acting user, so submit/approve/reject is never a blind field write.
func (s *FormService) UpdateFormStatus(id uint, newStatus string, actor string) (*models.Form, error) {
	status := models.FormStatus(newStatus)
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	form, err := s.GetFormByID(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(form.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, form.Status, status)
	}

	from := form.Status
	form.Status = status
	if err := s.repo.Save(&form); err != nil {
		return nil, err
	}

	log.Printf("form %d status %q -> %q by %s", form.ID, from, status, actor)
	return &form, nil
}

func transitionAllowed(from, to models.FormStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RenderPDF loads a form and produces its print document. When the MinIO
// archive is configured a copy is uploaded best-effort.
func (s *FormService) RenderPDF(id uint) (models.Form, []byte, error) {
	form, err := s.GetFormByID(id)
	if err != nil {
		return models.Form{}, nil, err
	}

	pdf, err := formdoc.Render(&form)
	if err != nil {
		return models.Form{}, nil, err
	}

	if minio.Enabled() {
		objectName := fmt.Sprintf("forms/%d/%s_%s.pdf",
			form.ID, sanitizeName(form.FormType), time.Now().UTC().Format("20060102T150405Z"))
		if err := minio.UploadPDF(context.Background(), objectName, pdf); err != nil {
			log.Printf("Failed to archive PDF for form %d: %v", form.ID, err)
		}
	}

	return form, pdf, nil
}

// GetSummary aggregates counts and normalized totals per form type and per
// status for the dashboard.
func (s *FormService) GetSummary() (response.SummaryResponse, error) {
	forms, err := s.repo.FindAll()
	if err != nil {
		return response.SummaryResponse{}, err
	}

	totals := map[string]*response.TypeSummary{}
	order := []string{}
	statuses := map[string]int{}

	for i := range forms {
		form := &forms[i]
		entry, ok := totals[form.FormType]
		if !ok {
			entry = &response.TypeSummary{FormType: form.FormType}
			totals[form.FormType] = entry
			order = append(order, form.FormType)
		}
		entry.Count++
		entry.Total += formdoc.Normalize(form).ComputedTotal
		statuses[string(form.Status)]++
	}

	summary := response.SummaryResponse{Statuses: statuses}
	for _, formType := range order {
		summary.Types = append(summary.Types, *totals[formType])
	}
	return summary, nil
}
