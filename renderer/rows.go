package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mockexchange/dash"
	"github.com/mockexchange/dash/palette"
)

var (
	orderHeaderStyle = lipgloss.NewStyle().Bold(true)

	orderColumns = []string{"ID", "Symbol", "Side", "Type", "Price", "Quantity", "Filled", "Status", "Age"}
	orderWidths  = []int{12, 12, 6, 8, 14, 14, 14, 18, 8}
)

// OrderRow renders one order as an aligned text row, colorized per the
// order's status and age. Orders with no determinable style render as plain
// text rather than being dropped.
func OrderRow(o dash.Order, p *palette.Palette, now time.Time, freshWindow time.Duration) string {
	age := Sentinel
	if d, ok := o.Age(now); ok {
		age = d.Truncate(time.Second).String()
	}
	cells := []string{
		o.ID,
		o.Symbol,
		string(o.Side),
		o.Type,
		Decimal(o.Price, ""),
		Decimal(o.Quantity, ""),
		Decimal(o.Filled, ""),
		string(o.Status),
		age,
	}
	row := joinCells(cells)

	style, ok := p.StyleFor(o.UpdatedAt, now, string(o.Status), freshWindow)
	if !ok {
		return row
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(style.Background)).
		Foreground(lipgloss.Color(style.Foreground)).
		Render(row)
}

// OrderTable renders the order book with a bold header and one colorized row
// per order.
func OrderTable(orders []dash.Order, p *palette.Palette, now time.Time, freshWindow time.Duration) string {
	var w strings.Builder
	w.WriteString(orderHeaderStyle.Render(joinCells(orderColumns)))
	w.WriteByte('\n')
	for _, o := range orders {
		w.WriteString(OrderRow(o, p, now, freshWindow))
		w.WriteByte('\n')
	}
	return w.String()
}

func joinCells(cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%-*s", orderWidths[i], c)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}
