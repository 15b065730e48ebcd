package http

import (
	"threatmonitor-api/internal/alert"
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
	"threatmonitor-api/pkg/response"
)

type getAlertsReq struct {
	Status   string `form:"status"`
	Severity string `form:"severity"`
	Ordering string `form:"ordering"`
	paginator.PaginateQuery
}

func (r getAlertsReq) toInput() alert.GetInput {
	return alert.GetInput{
		Status:        r.Status,
		Severity:      r.Severity,
		Ordering:      r.Ordering,
		PaginateQuery: r.PaginateQuery,
	}
}

type updateAlertStatusReq struct {
	Status string `json:"status"`
}

func (r updateAlertStatusReq) toInput(id string) alert.UpdateStatusInput {
	return alert.UpdateStatusInput{
		ID:     id,
		Status: r.Status,
	}
}

type alertResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Severity    string            `json:"severity"`
	Status      string            `json:"status"`
	EventID     *string           `json:"event_id"`
	EventType   string            `json:"event_type,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Severity:    string(a.Severity),
		Status:      string(a.Status),
		EventID:     a.EventID,
		EventType:   a.EventType,
		CreatedAt:   response.DateTime(a.CreatedAt),
		UpdatedAt:   response.DateTime(a.UpdatedAt),
	}
}

type getAlertsResp struct {
	Items     []alertResp                 `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetAlertsResp(o alert.GetAlertOutput) getAlertsResp {
	items := make([]alertResp, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		items = append(items, newAlertResp(a))
	}
	return getAlertsResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
