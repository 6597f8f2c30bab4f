package mapping

import (
	"time"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	var start *time.Time
	if !d.StartDate.IsZero() {
		s := d.StartDate
		start = &s
	}
	return models.Project{
		ProjectID:       d.ProjectID,
		ProjectName:     d.ProjectName,
		ClientName:      d.ClientName,
		SiteAddress:     d.SiteAddress,
		OfficeAddress:   d.OfficeAddress,
		ContactNumber:   d.ContactNumber,
		LocationLink1:   d.LocationLink1,
		LocationLink2:   d.LocationLink2,
		EstimatedBudget: d.EstimatedBudget,
		StartDate:       start,
		Status:          d.Status,
		Note:            d.Note,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	d := domain.Project{
		ProjectID:       m.ProjectID,
		ProjectName:     m.ProjectName,
		ClientName:      m.ClientName,
		SiteAddress:     m.SiteAddress,
		OfficeAddress:   m.OfficeAddress,
		ContactNumber:   m.ContactNumber,
		LocationLink1:   m.LocationLink1,
		LocationLink2:   m.LocationLink2,
		EstimatedBudget: m.EstimatedBudget,
		Status:          m.Status,
		Note:            m.Note,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.StartDate != nil {
		d.StartDate = *m.StartDate
	}
	return d
}

// ToModelContractor converts a domain Contractor to a model Contractor
func ToModelContractor(d domain.Contractor) models.Contractor {
	return models.Contractor{
		ContractorID:    d.ContractorID,
		ContractorName:  d.ContractorName,
		Project:         d.Project,
		Trade:           d.Trade,
		Unit:            d.Unit,
		UnitPrice:       d.UnitPrice,
		EstimatedQty:    d.EstimatedQty,
		EstimatedAmount: d.EstimatedAmount,
		Mobile:          d.Mobile,
		Email:           d.Email,
		Address:         d.Address,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractor converts a model Contractor to a domain Contractor
func ToDomainContractor(m models.Contractor) domain.Contractor {
	return domain.Contractor{
		ContractorID:    m.ContractorID,
		ContractorName:  m.ContractorName,
		Project:         m.Project,
		Trade:           m.Trade,
		Unit:            m.Unit,
		UnitPrice:       m.UnitPrice,
		EstimatedQty:    m.EstimatedQty,
		EstimatedAmount: m.EstimatedAmount,
		Mobile:          m.Mobile,
		Email:           m.Email,
		Address:         m.Address,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.Email,
		Role:        string(d.Role),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        domain.Role(m.Role),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
