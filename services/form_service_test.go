package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nwfth/forms-go/dto"
	"github.com/nwfth/forms-go/models"
	"github.com/nwfth/forms-go/repositories"
	"github.com/nwfth/forms-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newFormServiceWithMock(t *testing.T) (*FormService, *mock_repositories.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mock_repositories.NewMockFormRepo(ctrl)
	svc := NewFormService(&repositories.Repos{Form: mockRepo})
	return svc, mockRepo
}

func TestCreateForm_DefaultsToDraft(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	form, err := svc.CreateForm(dto.CreateFormDTO{
		FormType:  string(models.FormTypePurchaseRequest),
		OwnerName: "Somchai P.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusDraft, form.Status)
}

func TestCreateForm_AllowsDirectSubmission(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	form, err := svc.CreateForm(dto.CreateFormDTO{
		FormType:  string(models.FormTypeTravelRequest),
		OwnerName: "Somchai P.",
		Status:    string(models.FormStatusWaiting),
	})
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusWaiting, form.Status)
}

func TestCreateForm_RejectsApprovedInitialStatus(t *testing.T) {
	svc, _ := newFormServiceWithMock(t)

	_, err := svc.CreateForm(dto.CreateFormDTO{
		FormType:  string(models.FormTypePurchaseRequest),
		OwnerName: "Somchai P.",
		Status:    string(models.FormStatusApproved),
	})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestGetFormByID_NotFound(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().FindByID(uint(42)).Return(models.Form{}, gorm.ErrRecordNotFound)

	_, err := svc.GetFormByID(42)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestDeleteForm_DraftOnly(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().FindByID(uint(1)).Return(models.Form{ID: 1, Status: models.FormStatusDraft}, nil)
	mockRepo.EXPECT().Delete(uint(1)).Return(nil)

	assert.NoError(t, svc.DeleteForm(1))
}

func TestDeleteForm_RejectsSubmittedForm(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().FindByID(uint(2)).Return(models.Form{ID: 2, Status: models.FormStatusWaiting}, nil)

	err := svc.DeleteForm(2)
	assert.ErrorIs(t, err, ErrFormNotDraft)
}

func TestUpdateFormStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    models.FormStatus
		to      models.FormStatus
		allowed bool
	}{
		{"submit draft", models.FormStatusDraft, models.FormStatusWaiting, true},
		{"approve submitted", models.FormStatusWaiting, models.FormStatusApproved, true},
		{"reject submitted", models.FormStatusWaiting, models.FormStatusRejected, true},
		{"approve draft directly", models.FormStatusDraft, models.FormStatusApproved, false},
		{"reopen approved", models.FormStatusApproved, models.FormStatusDraft, false},
		{"resubmit rejected", models.FormStatusRejected, models.FormStatusWaiting, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newFormServiceWithMock(t)

			mockRepo.EXPECT().FindByID(uint(7)).Return(models.Form{ID: 7, Status: tc.from}, nil)
			if tc.allowed {
				mockRepo.EXPECT().Save(gomock.Any()).Return(nil)
			}

			form, err := svc.UpdateFormStatus(7, string(tc.to), "approver@newlywedsfoods.co.th")
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, form.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateFormStatus_UnknownStatus(t *testing.T) {
	svc, _ := newFormServiceWithMock(t)

	_, err := svc.UpdateFormStatus(7, "Pending", "someone")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateForm_KeepsTypeAndStatus(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	existing := models.Form{
		ID:       3,
		FormType: string(models.FormTypeMinorCapital),
		Status:   models.FormStatusWaiting,
	}
	mockRepo.EXPECT().FindByID(uint(3)).Return(existing, nil)
	mockRepo.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.UpdateForm(3, dto.UpdateFormDTO{
		OwnerName:  "Malee K.",
		Department: "Finance",
		Details:    map[string]any{"totalAmount": 1200.0},
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.FormTypeMinorCapital), form.FormType)
	assert.Equal(t, models.FormStatusWaiting, form.Status)
	assert.Equal(t, "Malee K.", form.OwnerName)
}

func TestGetSummary_AggregatesByTypeAndStatus(t *testing.T) {
	svc, mockRepo := newFormServiceWithMock(t)

	mockRepo.EXPECT().FindAll().Return([]models.Form{
		{
			FormType: string(models.FormTypePurchaseRequest),
			Status:   models.FormStatusApproved,
			Details:  datatypes.JSONMap{"grandTotal": 1000.0},
		},
		{
			FormType: string(models.FormTypePurchaseRequest),
			Status:   models.FormStatusWaiting,
			Details:  datatypes.JSONMap{"grandTotal": 250.5},
		},
		{
			FormType: string(models.FormTypeTravelRequest),
			Status:   models.FormStatusWaiting,
			Details:  datatypes.JSONMap{"estimatedCost": map[string]any{"total": 300.0}},
		},
	}, nil)

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	require.Len(t, summary.Types, 2)

	assert.Equal(t, string(models.FormTypePurchaseRequest), summary.Types[0].FormType)
	assert.Equal(t, 2, summary.Types[0].Count)
	assert.InDelta(t, 1250.5, summary.Types[0].Total, 0.001)
	assert.Equal(t, 1, summary.Types[1].Count)
	assert.InDelta(t, 300.0, summary.Types[1].Total, 0.001)

	assert.Equal(t, 2, summary.Statuses[string(models.FormStatusWaiting)])
	assert.Equal(t, 1, summary.Statuses[string(models.FormStatusApproved)])
}
