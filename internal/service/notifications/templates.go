package notifications

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func stylistLabel(a *domain.Appointment) string {
	if a.Stylist == nil {
		return "any stylist"
	}
	return *a.Stylist
}

func adminNewBookingText(a *domain.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New booking #%d (%s)\n", a.ID, a.ConfirmationCode)
	fmt.Fprintf(&b, "%s %s, %s, %d\n", a.Date.Format(domain.DateFormat), a.Time, a.Service, a.Price)
	fmt.Fprintf(&b, "Stylist: %s\n", stylistLabel(a))
	fmt.Fprintf(&b, "Client: %s, %s", a.ClientName, a.ClientPhone)
	if a.HasEmail() {
		fmt.Fprintf(&b, ", %s", *a.ClientEmail)
	}
	return b.String()
}

func confirmationText(a *domain.Appointment) string {
	return fmt.Sprintf("Booking #%d (%s) confirmed: %s %s, %s. Client %s, %s",
		a.ID, a.ConfirmationCode, a.Date.Format(domain.DateFormat), a.Time, a.Service, a.ClientName, a.ClientPhone)
}

func rejectionText(a *domain.Appointment) string {
	return fmt.Sprintf("Booking #%d (%s) rejected: %s %s, %s. Client %s, %s",
		a.ID, a.ConfirmationCode, a.Date.Format(domain.DateFormat), a.Time, a.Service, a.ClientName, a.ClientPhone)
}

func confirmationMail(a *domain.Appointment) (string, string) {
	subject := fmt.Sprintf("Your appointment on %s is confirmed", a.Date.Format(domain.DateFormat))
	body := fmt.Sprintf("Hello %s,\n\nyour appointment is confirmed.\n\nDate: %s\nTime: %s\nService: %s\nStylist: %s\nCode: %s\n",
		a.ClientName, a.Date.Format(domain.DateFormat), a.Time, a.Service, stylistLabel(a), a.ConfirmationCode)
	return subject, body
}

func rejectionMail(a *domain.Appointment) (string, string) {
	subject := fmt.Sprintf("Your appointment request for %s", a.Date.Format(domain.DateFormat))
	body := fmt.Sprintf("Hello %s,\n\nunfortunately we cannot accept your request for %s at %s (%s).\nPlease choose another time.\n\nCode: %s\n",
		a.ClientName, a.Date.Format(domain.DateFormat), a.Time, a.Service, a.ConfirmationCode)
	return subject, body
}

func reminderMail(a *domain.Appointment) (string, string) {
	subject := "Reminder: your appointment tomorrow"
	body := fmt.Sprintf("Hello %s,\n\nthis is a reminder about your appointment tomorrow, %s at %s.\nService: %s\nStylist: %s\nCode: %s\n",
		a.ClientName, a.Date.Format(domain.DateFormat), a.Time, a.Service, stylistLabel(a), a.ConfirmationCode)
	return subject, body
}
