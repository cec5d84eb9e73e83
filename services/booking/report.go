package booking

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"bookit/models"
)

// bookingDateFormat mirrors the locale-style stamp shown in the UI,
// e.g. "Sun, Jun 1, 2025, 02:00 PM".
const bookingDateFormat = "Mon, Jan 2, 2006, 03:04 PM"

var reportTemplate = template.Must(template.New("report").Parse(`<html>
  <head>
    <title>All Bookings</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 20px; color: #333; }
      h1 { color: #ea580c; }
      h2 { color: #c2410c; margin-top: 30px; }
      table { width: 100%; border-collapse: collapse; margin-top: 10px; }
      th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
      th { background-color: #f97316; color: white; }
      .status-Pending { background-color: #fef3c7; color: #92400e; }
      .status-Confirmed { background-color: #bbf7d0; color: #166534; }
      .status-Cancelled { background-color: #fecaca; color: #991b1b; }
    </style>
  </head>
  <body>
    <h1>All Bookings</h1>

    <h2>Upcoming Bookings</h2>
    {{if not .Upcoming}}<p>No upcoming bookings.</p>{{else}}<table>
      <thead>
        <tr>
          <th>Service</th>
          <th>Date &amp; Time</th>
          <th>Booked By</th>
          <th>Email</th>
          <th>Phone</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
        {{range .Upcoming}}<tr>
          <td>{{.Service}}</td>
          <td>{{.Date}}</td>
          <td>{{.Name}}</td>
          <td>{{.Email}}</td>
          <td>{{.Phone}}</td>
          <td class="status-{{.Status}}">{{.Status}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>{{end}}

    <h2>Past Bookings</h2>
    {{if not .Past}}<p>No past bookings.</p>{{else}}<table>
      <thead>
        <tr>
          <th>Service</th>
          <th>Date &amp; Time</th>
          <th>Booked By</th>
          <th>Email</th>
          <th>Phone</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
        {{range .Past}}<tr>
          <td>{{.Service}}</td>
          <td>{{.Date}}</td>
          <td>{{.Name}}</td>
          <td>{{.Email}}</td>
          <td>{{.Phone}}</td>
          <td class="status-{{.Status}}">{{.Status}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>{{end}}
  </body>
</html>`))

type reportRow struct {
	Service string
	Date    string
	Name    string
	Email   string
	Phone   string
	Status  string
}

type reportData struct {
	Upcoming []reportRow
	Past     []reportRow
}

func reportRows(bookings []models.Booking) []reportRow {
	rows := make([]reportRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, reportRow{
			Service: b.Service,
			Date:    b.Date.Format(bookingDateFormat),
			Name:    b.Person.Name,
			Email:   b.Person.Email,
			Phone:   b.Person.Phone,
			Status:  b.Status,
		})
	}
	return rows
}

// RenderPrintableReport produces the printable booking document. It reads
// the current booking list and has no side effects.
func (r *InMemoryBookingRegistry) RenderPrintableReport(userID string, now time.Time) (string, error) {
	upcoming, past := r.Partition(userID, now)

	var sb strings.Builder
	data := reportData{
		Upcoming: reportRows(upcoming),
		Past:     reportRows(past),
	}
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render booking report: %w", err)
	}
	return sb.String(), nil
}
