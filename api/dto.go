/*
dto.go - JSON shapes of the HTTP API

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

Amounts that can be fractional (limits, remaining balances) travel as
decimal strings so no precision is lost in JSON.
*/
package api

import "github.com/warp/limit-calculator/generic"

// AddRecordRequest is the body of POST /api/{kind}/records.
// Date is DD.MM.YYYY; empty means today.
type AddRecordRequest struct {
	Amount  int64  `json:"amount"`
	Comment string `json:"comment"`
	Date    string `json:"date,omitempty"`
}

type RecordDTO struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

func toRecordDTO(r generic.Record) RecordDTO {
	return RecordDTO{
		ID:      r.ID,
		Amount:  r.Amount,
		Comment: r.Comment,
		Date:    r.Date.String(),
	}
}

func toRecordDTOs(records []generic.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordDTO(r))
	}
	return out
}

type StatsDTO struct {
	Limit string `json:"limit"`
	Today int64  `json:"today"`
	Week  int64  `json:"week"`
}

type CashRemainedDTO struct {
	Message   string `json:"message"`
	Remaining string `json:"remaining"`
	Currency  string `json:"currency"`
	Label     string `json:"label"`
}

type CaloriesRemainedDTO struct {
	Message   string `json:"message"`
	Remaining string `json:"remaining"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
