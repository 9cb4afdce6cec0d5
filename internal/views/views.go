// Package views renders single entities as plain text. No business logic
// lives here beyond display formatting; status comparisons go through the
// domain normalizer.
package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/stayease/stayease/internal/domain"
)

// StatusLabel maps any status spelling to its display label. Unknown values
// are shown as-is so a contract violation is visible instead of hidden.
func StatusLabel(status string) string {
	switch domain.NormalizeStatus(status) {
	case domain.StatusPending:
		return "Pending"
	case domain.StatusConfirmed:
		return "Confirmed"
	case domain.StatusCancelled:
		return "Cancelled"
	default:
		return status
	}
}

func ListingTable(w io.Writer, listings []domain.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No listings found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tFLOOR\tAVAILABILITY\tOWNER")
	for _, l := range listings {
		owner := ""
		if l.Owner != nil {
			owner = l.Owner.FullName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			l.ID, l.Title, l.Location, l.FloorNumber, l.AvailabilityStatus, owner)
	}
	tw.Flush()
}

func AppointmentCard(w io.Writer, apt domain.Appointment) {
	title := "(unknown listing)"
	location := ""
	if apt.Listing != nil {
		title = apt.Listing.Title
		location = apt.Listing.Location
	}

	when := apt.AppointmentTime
	if t, ok := apt.VisitTime(); ok {
		when = t.Format("Mon, Jan 2 2006 at 3:04 PM")
	}

	fmt.Fprintf(w, "#%d  %s [%s]\n", apt.ID, title, StatusLabel(apt.Status))
	if location != "" {
		fmt.Fprintf(w, "    %s\n", location)
	}
	fmt.Fprintf(w, "    %s\n", when)
	if apt.User != nil {
		fmt.Fprintf(w, "    Visitor: %s\n", apt.User.FullName)
	}
}

func AppointmentList(w io.Writer, appointments []domain.Appointment) {
	if len(appointments) == 0 {
		fmt.Fprintln(w, "No appointments.")
		return
	}
	for _, apt := range appointments {
		AppointmentCard(w, apt)
	}
}

func ReviewCard(w io.Writer, review domain.Review) {
	stars := strings.Repeat("*", review.Rating) + strings.Repeat(".", 5-review.Rating)
	title := ""
	if review.Listing != nil {
		title = " on " + review.Listing.Title
	}
	fmt.Fprintf(w, "#%d  [%s] by %s%s\n", review.ID, stars, review.UserName, title)
	if review.Comment != "" {
		fmt.Fprintf(w, "    %s\n", review.Comment)
	}
}

func ReviewList(w io.Writer, reviews []domain.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(w, "No reviews yet.")
		return
	}
	for _, r := range reviews {
		ReviewCard(w, r)
	}
}

func NotificationList(w io.Writer, notifications []domain.Notification) {
	if len(notifications) == 0 {
		fmt.Fprintln(w, "No notifications.")
		return
	}
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(w, "%s #%d  %s\n", marker, n.ID, n.Message)
	}
}

func DashboardStats(w io.Writer, stats domain.DashboardStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Listings\t%d\n", stats.TotalListings)
	fmt.Fprintf(tw, "Appointments\t%d (%d pending, %d accepted, %d rejected)\n",
		stats.TotalAppointments, stats.PendingAppointments,
		stats.AcceptedAppointments, stats.RejectedAppointments)
	fmt.Fprintf(tw, "Reviews\t%d\n", stats.TotalReviews)
	fmt.Fprintf(tw, "Average rating\t%.1f\n", stats.AverageRating)
	tw.Flush()
}
