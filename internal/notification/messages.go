package notification

import (
	"fmt"

	"ezpickup-backend/internal/model"
)

// EmailMessage is a rendered email ready for an EmailSender.
type EmailMessage struct {
	Subject  string
	HTMLBody string
}

func deviceLabel(b model.Booking) string {
	label := fmt.Sprintf("%s %s", b.Model.Brand.Name, b.Model.Name)
	if b.Variant != nil {
		label += " " + b.Variant.Name
	}
	return label
}

// CustomerEmail renders the booking confirmation sent to the customer.
func CustomerEmail(b model.Booking, siteURL string) EmailMessage {
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #22c55e;">Booking Confirmed - %s</h2>
  <p>Dear %s,</p>
  <p>Thank you for choosing EZ Electronics Pickup! Your booking has been confirmed.</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Booking Details:</h3>
    <p><strong>Reference Code:</strong> %s</p>
    <p><strong>Device:</strong> %s</p>
    <p><strong>Estimated Price:</strong> &#8377;%d</p>
    <p><strong>Pickup Date:</strong> %s</p>
    <p><strong>Time Slot:</strong> %s</p>
    <p><strong>Address:</strong> %s, %s, %s</p>
  </div>
  <p>Our team will contact you shortly to confirm the pickup details.</p>
  <p>Track your pickup: <a href="%s/track/%s">Click here</a></p>
  <p>Best regards,<br>EZ Electronics Pickup Team</p>
</div>`,
		b.ReferenceCode, b.CustomerName, b.ReferenceCode, deviceLabel(b),
		b.EstimatedPrice, b.PickupDate.Format("02 Jan 2006"), b.PreferredTimeSlot,
		b.Address, b.City.Name, b.Pincode, siteURL, b.ReferenceCode)

	return EmailMessage{
		Subject:  fmt.Sprintf("Booking Confirmed - %s", b.ReferenceCode),
		HTMLBody: body,
	}
}

// AdminEmail renders the new-booking alert sent to the back office.
func AdminEmail(b model.Booking) EmailMessage {
	body := fmt.Sprintf(`<h2>New Booking Received</h2>
<p><strong>Reference:</strong> %s</p>
<p><strong>Customer:</strong> %s</p>
<p><strong>Contact:</strong> %s</p>
<p><strong>Device:</strong> %s</p>
<p><strong>Estimated Price:</strong> &#8377;%d</p>
<p><strong>Pickup:</strong> %s - %s</p>
<p><strong>Address:</strong> %s, %s, %s</p>`,
		b.ReferenceCode, b.CustomerName, b.ContactNumber, deviceLabel(b),
		b.EstimatedPrice, b.PickupDate.Format("02 Jan 2006"), b.PreferredTimeSlot,
		b.Address, b.City.Name, b.Pincode)

	return EmailMessage{
		Subject:  fmt.Sprintf("New Pickup Booking - %s", b.ReferenceCode),
		HTMLBody: body,
	}
}

// CustomerWhatsApp renders the confirmation text sent to the customer.
func CustomerWhatsApp(b model.Booking, siteURL string) string {
	return fmt.Sprintf(`Booking Confirmed!

Reference: %s
Device: %s
Estimated Price: Rs %d
Pickup: %s - %s

Our team will contact you soon!

Track: %s/track/%s

- EZ Electronics Pickup Team`,
		b.ReferenceCode, deviceLabel(b), b.EstimatedPrice,
		b.PickupDate.Format("02 Jan 2006"), b.PreferredTimeSlot,
		siteURL, b.ReferenceCode)
}

// AdminWhatsApp renders the new-booking alert text for the admin phone.
func AdminWhatsApp(b model.Booking, siteURL string) string {
	return fmt.Sprintf(`New Booking Alert!

Reference: %s
Customer: %s
Contact: %s
Device: %s
Estimated: Rs %d
Pickup: %s - %s
Address: %s, %s

Admin Panel: %s/admin`,
		b.ReferenceCode, b.CustomerName, b.ContactNumber, deviceLabel(b),
		b.EstimatedPrice, b.PickupDate.Format("02 Jan 2006"), b.PreferredTimeSlot,
		b.Address, b.City.Name, siteURL)
}
