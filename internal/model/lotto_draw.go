package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LottoDraw is a row of the lotto_draws table.
//
// A draw is created with only a date; WinningNumber and IsDrawn are filled
// in by a later update. The order of those updates is not enforced.
type LottoDraw struct {
	ID            int64   `json:"draw_id"`
	DrawDate      string  `json:"draw_date"`
	WinningNumber *string `json:"winning_number"`
	IsDrawn       bool    `json:"is_drawn"`
}

// WinningNumber accepts either a JSON string or a JSON number and keeps
// the digits as text, so "007" and 7 are both valid input.
type WinningNumber string

func (w *WinningNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = WinningNumber(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("winning_number must be a string or a number")
	}
	*w = WinningNumber(n.String())
	return nil
}

// Ptr returns the value as a nullable column argument.
func (w *WinningNumber) Ptr() *string {
	if w == nil {
		return nil
	}
	s := string(*w)
	return &s
}

type CreateLottoDrawRequest struct {
	DrawDate string `json:"draw_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateLottoDrawRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateLottoDrawRequest overwrites every mutable draw field. A missing or
// null winning_number clears the column.
type UpdateLottoDrawRequest struct {
	ID            int64          `param:"id" json:"-"`
	DrawDate      string         `json:"draw_date" validate:"required,datetime=2006-01-02"`
	WinningNumber *WinningNumber `json:"winning_number"`
	IsDrawn       *bool          `json:"is_drawn" validate:"required"`
}

func (r *UpdateLottoDrawRequest) Validate() error {
	return validate.Struct(r)
}

// LottoDrawIDRequest addresses a single draw by path id. Any integer is
// accepted; one that matches no row resolves to not found.
type LottoDrawIDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *LottoDrawIDRequest) Validate() error {
	return validate.Struct(r)
}
