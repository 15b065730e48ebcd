package http

import (
	"threatmonitor-api/internal/event"
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
	"threatmonitor-api/pkg/response"
)

type createEventReq struct {
	SourceName  string `json:"source_name"`
	EventType   string `json:"event_type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func (r createEventReq) toInput() event.CreateInput {
	return event.CreateInput{
		SourceName:  r.SourceName,
		EventType:   r.EventType,
		Severity:    r.Severity,
		Description: r.Description,
	}
}

type getEventsReq struct {
	paginator.PaginateQuery
}

func (r getEventsReq) toInput() event.GetInput {
	return event.GetInput{
		PaginateQuery: r.PaginateQuery,
	}
}

type eventResp struct {
	ID          string            `json:"id"`
	SourceName  string            `json:"source_name"`
	EventType   string            `json:"event_type"`
	Severity    string            `json:"severity"`
	Description string            `json:"description"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		SourceName:  ev.SourceName,
		EventType:   ev.EventType,
		Severity:    string(ev.Severity),
		Description: ev.Description,
		CreatedAt:   response.DateTime(ev.CreatedAt),
	}
}

type getEventsResp struct {
	Items     []eventResp                 `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetEventsResp(o event.GetEventOutput) getEventsResp {
	items := make([]eventResp, 0, len(o.Events))
	for _, ev := range o.Events {
		items = append(items, newEventResp(ev))
	}
	return getEventsResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
