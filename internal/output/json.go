package output

import (
	"encoding/json"
	"io"
	"strings"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	Index  int        `json:"index"`
	Source string     `json:"source,omitempty"`
	GameID string     `json:"gameId,omitempty"`
	State  string     `json:"state,omitempty"`
	FEN    string     `json:"fen,omitempty"`
	ToMove string     `json:"toMove,omitempty"` // "white" or "black"
	Moves  []JSONMove `json:"moves"`
	Check  *JSONCheck `json:"check,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// JSONMove represents a generated move in JSON format.
type JSONMove struct {
	UCI   string `json:"uci"`
	From  string `json:"from"`
	To    string `json:"to"`
	Piece string `json:"piece"`
}

// JSONCheck represents a legality query.
type JSONCheck struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Legal bool   `json:"legal"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		Index:  r.Index,
		Source: r.Source,
		Moves:  []JSONMove{},
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}
	jr.GameID = r.GameID
	jr.State = r.State
	jr.FEN = r.FEN()
	jr.ToMove = strings.ToLower(r.ToMove.String())
	for _, m := range r.Moves {
		jr.Moves = append(jr.Moves, JSONMove{
			UCI:   m.String(),
			From:  m.From.String(),
			To:    m.To.String(),
			Piece: strings.ToLower(m.Piece.String()),
		})
	}
	if r.Check != nil {
		jr.Check = &JSONCheck{
			From:  r.Check.From.String(),
			To:    r.Check.To.String(),
			Legal: r.Check.Legal,
		}
	}
	return jr
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
