package models

import (
	"time"

	"gorm.io/datatypes"
)

type FormType string

const (
	FormTypePurchaseRequest FormType = "Purchase Request"
	FormTypeTravelRequest   FormType = "Travel Request"
	FormTypeMajorCapital    FormType = "Major Capital Authorization Request"
	FormTypeMinorCapital    FormType = "Minor Capital Authorization Request"
)

type FormStatus string

const (
	FormStatusDraft    FormStatus = "Draft"
	FormStatusWaiting  FormStatus = "Waiting For Approve"
	FormStatusApproved FormStatus = "Approved"
	FormStatusRejected FormStatus = "Rejected"
)

func (s FormStatus) Valid() bool {
	switch s {
	case FormStatusDraft, FormStatusWaiting, FormStatusApproved, FormStatusRejected:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s FormStatus) Terminal() bool {
	return s == FormStatusApproved || s == FormStatusRejected
}

type Form struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	FormType   string            `gorm:"size:100;not null" json:"form_type"`
	OwnerName  string            `gorm:"size:255;not null" json:"owner_name"`
	Department string            `gorm:"size:255" json:"department"`
	Status     FormStatus        `gorm:"type:form_status;default:'Draft';not null" json:"status"`
	Details    datatypes.JSONMap `json:"details"`
	// RequestDate is set once at creation and never updated afterwards.
	RequestDate time.Time `gorm:"column:request_date;autoCreateTime" json:"request_date"`
}
