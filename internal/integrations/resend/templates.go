package resend

import (
	"fmt"
	"html"

	"github.com/festive-rides/booking-service/internal/domain"
)

// passengerConfirmationTemplate письмо-подтверждение пассажиру
func passengerConfirmationTemplate(b *domain.Booking) string {
	special := ""
	if b.SpecialRequirements != nil && *b.SpecialRequirements != "" {
		special = fmt.Sprintf(`
      <div class="detail-row"><span class="detail-label">Special Requirements:</span> %s</div>`,
			html.EscapeString(*b.SpecialRequirements))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; background: #f0f9ff; padding: 20px; margin: 0; }
    .container { max-width: 600px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; }
    .header { background: linear-gradient(to right, #C41E3A, #0F4C3A); color: white; padding: 20px; text-align: center; border-radius: 10px; margin-bottom: 20px; }
    .details { background: #fef3c7; padding: 20px; margin: 20px 0; border-radius: 8px; border-left: 4px solid #D4AF37; }
    .detail-row { margin: 12px 0; line-height: 1.6; }
    .detail-label { font-weight: bold; color: #2C2C2C; }
    .footer { text-align: center; color: #6b7280; margin-top: 30px; font-size: 14px; }
    strong { color: #C41E3A; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎄 Your Festive Ride is Confirmed! 🎅</h1>
    </div>
    <p>Kia ora <strong>%s</strong>,</p>
    <p>Your free community ride has been successfully booked! We're looking forward to helping you get where you need to be this Christmas season.</p>
    <div class="details">
      <h2>📋 Booking Details</h2>
      <div class="detail-row"><span class="detail-label">Booking Reference:</span> <strong>%s</strong></div>
      <div class="detail-row"><span class="detail-label">Date:</span> Saturday, December 13, 2025</div>
      <div class="detail-row"><span class="detail-label">Pickup Time:</span> <strong>%s</strong></div>
      <div class="detail-row"><span class="detail-label">Pickup Address:</span> %s</div>
      <div class="detail-row"><span class="detail-label">Destination:</span> %s</div>
      <div class="detail-row"><span class="detail-label">Passengers:</span> %d</div>%s
    </div>
    <p>Need to cancel? Use your booking reference and email address on the cancellation page.</p>
    <div class="footer">
      <p>Festive Rides — free community transport</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(b.PassengerName),
		b.BookingReference,
		domain.FormatTimeSlot(b.TimeSlot),
		html.EscapeString(b.PickupAddress),
		html.EscapeString(b.DestinationAddress),
		b.NumPassengers,
		special,
	)
}

// adminNotificationTemplate уведомление администратору о новом бронировании
func adminNotificationTemplate(b *domain.Booking) string {
	special := "None"
	if b.SpecialRequirements != nil && *b.SpecialRequirements != "" {
		special = html.EscapeString(*b.SpecialRequirements)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif;">
  <h2>New Booking: %s</h2>
  <table cellpadding="6">
    <tr><td><b>Pickup Time</b></td><td>%s</td></tr>
    <tr><td><b>Passenger</b></td><td>%s</td></tr>
    <tr><td><b>Phone</b></td><td>%s</td></tr>
    <tr><td><b>Email</b></td><td>%s</td></tr>
    <tr><td><b>Pickup</b></td><td>%s</td></tr>
    <tr><td><b>Destination</b></td><td>%s (%s)</td></tr>
    <tr><td><b>Passengers</b></td><td>%d</td></tr>
    <tr><td><b>Special Requirements</b></td><td>%s</td></tr>
  </table>
</body>
</html>`,
		b.BookingReference,
		domain.FormatTimeSlot(b.TimeSlot),
		html.EscapeString(b.PassengerName),
		html.EscapeString(b.PassengerPhone),
		html.EscapeString(b.PassengerEmail),
		html.EscapeString(b.PickupAddress),
		html.EscapeString(b.DestinationAddress),
		html.EscapeString(string(b.DestinationCategory)),
		b.NumPassengers,
		special,
	)
}
