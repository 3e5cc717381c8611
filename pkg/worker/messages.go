package worker

import (
	"github.com/google/uuid"

	"github.com/limaJavier/classpicker/pkg/model"
)

const (
	KindTable        = "table"
	KindAutoSchedule = "auto-schedule"
)

// Request is either a TableRequest or an AutoScheduleRequest
type Request interface {
	RequestID() uuid.UUID
	Kind() string
	sealed()
}

// TableRequest asks for the conflict table of a selection
type TableRequest struct {
	ID        uuid.UUID       `json:"id"`
	Selection model.Selection `json:"selection"`
}

// AutoScheduleRequest asks for the Ordinal-th best section assignment of the requested subjects
type AutoScheduleRequest struct {
	ID        uuid.UUID           `json:"id"`
	Selection model.Selection     `json:"selection"`
	Search    model.SearchRequest `json:"search"`
}

func NewTableRequest(selection model.Selection) TableRequest {
	return TableRequest{ID: uuid.New(), Selection: selection}
}

func NewAutoScheduleRequest(selection model.Selection, search model.SearchRequest) AutoScheduleRequest {
	return AutoScheduleRequest{ID: uuid.New(), Selection: selection, Search: search}
}

func (request TableRequest) RequestID() uuid.UUID { return request.ID }
func (request TableRequest) Kind() string         { return KindTable }
func (TableRequest) sealed()                      {}

func (request AutoScheduleRequest) RequestID() uuid.UUID { return request.ID }
func (request AutoScheduleRequest) Kind() string         { return KindAutoSchedule }
func (AutoScheduleRequest) sealed()                      {}

// Response carries the result matching the request kind, or the error that prevented it
type Response struct {
	ID    uuid.UUID          `json:"id"`
	Table *model.TableResult `json:"table,omitempty"`
	Auto  *model.AutoResult  `json:"auto,omitempty"`
	Err   error              `json:"-"`
}

func handleTable(scheduler model.Scheduler, request TableRequest) Response {
	result, err := scheduler.Table(request.Selection)
	if err != nil {
		return Response{ID: request.ID, Err: err}
	}
	return Response{ID: request.ID, Table: &result}
}

func handleAutoSchedule(scheduler model.Scheduler, request AutoScheduleRequest) Response {
	result, err := scheduler.AutoSchedule(request.Selection, request.Search)
	if err != nil {
		return Response{ID: request.ID, Err: err}
	}
	return Response{ID: request.ID, Auto: &result}
}
