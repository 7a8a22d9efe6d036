package dto

import (
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// AuditRecordResponse defines the data returned for an audit log entry.
type AuditRecordResponse struct {
	AuditID   string    `json:"auditID"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	JournalID *string   `json:"journalID,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListAuditRecordsParams defines query parameters for listing audit records.
type ListAuditRecordsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListAuditRecordsResponse wraps a paginated list of audit records.
type ListAuditRecordsResponse struct {
	Records   []AuditRecordResponse `json:"records"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToAuditRecordResponse converts a domain.AuditRecord to AuditRecordResponse DTO.
func ToAuditRecordResponse(r *domain.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		AuditID:   r.AuditID,
		Actor:     r.Actor,
		Action:    string(r.Action),
		JournalID: r.JournalID,
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
	}
}

// ToListAuditRecordsResponse converts records plus a pagination token to the list DTO.
func ToListAuditRecordsResponse(records []domain.AuditRecord, nextToken *string) ListAuditRecordsResponse {
	res := make([]AuditRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToAuditRecordResponse(&r)
	}
	return ListAuditRecordsResponse{Records: res, NextToken: nextToken}
}
