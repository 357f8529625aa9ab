package htmlparser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"rotorhub/internal/exceptions"
)

// FieldSet holds the labeled cells of one rendered table row. Every field is
// optional: the portal omits spans freely, and the joiner decides fallbacks.
type FieldSet struct {
	FlightNumber  *string
	ScheduledTime *string
	Customer      *string
	Routing       *string
	Status        *string
	RevisedTime   *string
}

const flightTableID = "Table1"

// Span ids are machine-generated by the portal (e.g.
// "DataList1_ctl03_lbFlightNumber"), so labels are matched by substring.
const (
	labelFlightNumber = "FlightNumber"
	labelScheduled    = "ArrDept"
	labelCustomer     = "Customer"
	labelRouting      = "Routing"
	labelStatus       = "Status"
	labelRevised      = "RevTime"
)

type Extractor struct {
	tableID string
}

func NewExtractor() *Extractor {
	return &Extractor{tableID: flightTableID}
}

// ExtractRows returns one FieldSet per table row that carries a flight number,
// in document order. Rows without one are headers or footers, not flights.
func (e *Extractor) ExtractRows(page string) ([]FieldSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &exceptions.ParseFieldError{Field: e.tableID, Err: err}
	}

	var rows []FieldSet
	doc.Find("#" + e.tableID).First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var fs FieldSet
		tr.Find("span").Each(func(_ int, span *goquery.Selection) {
			id := span.AttrOr("id", "")
			switch {
			case strings.Contains(id, labelFlightNumber):
				fs.FlightNumber = firstTextNode(span)
			case strings.Contains(id, labelScheduled):
				fs.ScheduledTime = firstTextNode(span)
			case strings.Contains(id, labelCustomer):
				fs.Customer = firstTextNode(span)
			case strings.Contains(id, labelRouting):
				fs.Routing = firstTextNode(span)
			case strings.Contains(id, labelStatus):
				// The status span carries a style attribute which the portal
				// renders by wrapping the text in a font element.
				fs.Status = firstTextNode(span.Find("font").First())
			case strings.Contains(id, labelRevised):
				fs.RevisedTime = firstTextNode(span)
			}
		})
		if fs.FlightNumber == nil {
			return
		}
		rows = append(rows, fs)
	})
	return rows, nil
}

func firstTextNode(s *goquery.Selection) *string {
	if s.Length() == 0 {
		return nil
	}
	var found *string
	s.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if node := c.Get(0); node.Type == html.TextNode {
			text := node.Data
			found = &text
			return false
		}
		return true
	})
	return found
}
