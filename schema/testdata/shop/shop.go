// Package shop is a fixture for FromGoPackage.
package shop

import "time"

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Priority int

const (
	PriorityLow  Priority = 1
	PriorityHigh Priority = 10
)

type Order struct {
	XMLName  struct{}  `xml:"order"`
	ID       string    `xml:"id,attr"`
	Placed   time.Time `xml:"placed"`
	Status   Status
	Lines    []*Line `xml:"line"`
	Notes    map[string]string
	Internal string `xml:"-"`
	secret   string
}

type Line struct {
	SKU      string  `xml:"sku,attr"`
	Quantity int     `xml:"qty"`
	Price    float64 `xml:"urn:shop price"`
}
