package model

import "github.com/shopspring/decimal"

type Budget struct {
	ID          int64
	Month       int
	Year        int
	Category    string
	LimitAmount decimal.Decimal
}
