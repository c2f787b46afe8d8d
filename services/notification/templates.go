package notification

import (
	"fmt"
	"strings"
)

// NotificationData carries the fields the staff notification templates render.
type NotificationData struct {
	CompanyName    string
	RecipientName  string
	CitizenName    string
	CitizenPhone   string
	DepartmentName string
	GrievanceID    string
	AppointmentID  string
	Category       string
	Priority       string
	Description    string
	Location       string
	AssignedByName string
	Remarks        string
	Date           string
	Slot           string
	MessageType    string
}

func (d NotificationData) companyName() string {
	if d.CompanyName == "" {
		return "JanSeva Portal"
	}
	return d.CompanyName
}

func (d NotificationData) priority() string {
	if d.Priority == "" {
		return "MEDIUM"
	}
	return d.Priority
}

// GrievanceCreatedEmail notifies department staff of a new grievance.
func GrievanceCreatedEmail(d NotificationData) EmailMessage {
	rows := []string{
		detailRow("Grievance ID", d.GrievanceID),
		detailRow("Citizen Name", d.CitizenName),
		detailRow("Phone", d.CitizenPhone),
		detailRow("Department", d.DepartmentName),
		detailRow("Category", orNA(d.Category)),
		detailRow("Priority", d.priority()),
		detailRow("Description", d.Description),
	}
	if d.Location != "" {
		rows = append(rows, detailRow("Location", d.Location))
	}
	return EmailMessage{
		Subject: fmt.Sprintf("New Grievance Received - %s", d.GrievanceID),
		HTML: renderLayout("#0f4c81", "New Grievance Received", d.RecipientName,
			"A new grievance has been received and assigned to your department.",
			rows, d.companyName()),
		Text: fmt.Sprintf("New Grievance Received\n\nGrievance ID: %s\nCitizen: %s\nPhone: %s\nDepartment: %s\nDescription: %s",
			d.GrievanceID, d.CitizenName, d.CitizenPhone, d.DepartmentName, d.Description),
	}
}

// GrievanceAssignedEmail notifies an operator of a grievance assignment.
func GrievanceAssignedEmail(d NotificationData) EmailMessage {
	rows := []string{
		detailRow("Grievance ID", d.GrievanceID),
		detailRow("Citizen Name", d.CitizenName),
		detailRow("Phone", d.CitizenPhone),
		detailRow("Department", d.DepartmentName),
		detailRow("Priority", d.priority()),
		detailRow("Description", d.Description),
	}
	if d.AssignedByName != "" {
		rows = append(rows, detailRow("Assigned by", d.AssignedByName))
	}
	return EmailMessage{
		Subject: fmt.Sprintf("Grievance Assigned to You - %s", d.GrievanceID),
		HTML: renderLayout("#1a73e8", "Grievance Assigned to You", d.RecipientName,
			"A grievance has been assigned to you for resolution.",
			rows, d.companyName()),
		Text: fmt.Sprintf("Grievance Assigned to You\n\nGrievance ID: %s\nCitizen: %s\nPhone: %s\nDepartment: %s\nDescription: %s",
			d.GrievanceID, d.CitizenName, d.CitizenPhone, d.DepartmentName, d.Description),
	}
}

// GrievanceResolvedEmail notifies the reporter that a grievance was closed.
func GrievanceResolvedEmail(d NotificationData) EmailMessage {
	rows := []string{
		detailRow("Grievance ID", d.GrievanceID),
		detailRow("Citizen Name", d.CitizenName),
		detailRow("Department", orNA(d.DepartmentName)),
		detailRow("Status", "Resolved"),
	}
	if d.Remarks != "" {
		rows = append(rows, fmt.Sprintf(`<div class="remarks"><strong>Officer Remarks:</strong><br/>%s</div>`, d.Remarks))
	}
	text := fmt.Sprintf("Grievance Resolved\n\nGrievance ID: %s\nCitizen: %s\nDepartment: %s\nStatus: Resolved",
		d.GrievanceID, d.CitizenName, orNA(d.DepartmentName))
	if d.Remarks != "" {
		text += "\nRemarks: " + d.Remarks
	}
	return EmailMessage{
		Subject: fmt.Sprintf("Grievance Resolved - %s", d.GrievanceID),
		HTML: renderLayout("#28a745", "Grievance Resolved", d.RecipientName,
			"The following grievance has been resolved.",
			rows, d.companyName()),
		Text: text,
	}
}

// AppointmentBookedEmail notifies department staff of a new booking.
func AppointmentBookedEmail(d NotificationData) EmailMessage {
	rows := []string{
		detailRow("Appointment ID", d.AppointmentID),
		detailRow("Citizen Name", d.CitizenName),
		detailRow("Phone", d.CitizenPhone),
		detailRow("Department", d.DepartmentName),
		detailRow("Date", d.Date),
		detailRow("Time Slot", d.Slot),
	}
	return EmailMessage{
		Subject: fmt.Sprintf("New Appointment Booked - %s", d.AppointmentID),
		HTML: renderLayout("#0f4c81", "New Appointment Booked", d.RecipientName,
			"A citizen has booked an appointment with your department.",
			rows, d.companyName()),
		Text: fmt.Sprintf("New Appointment Booked\n\nAppointment ID: %s\nCitizen: %s\nPhone: %s\nDepartment: %s\nDate: %s\nSlot: %s",
			d.AppointmentID, d.CitizenName, d.CitizenPhone, d.DepartmentName, d.Date, d.Slot),
	}
}

// CitizenMessageEmail alerts a staff inbox about an inbound WhatsApp message
// that no automated conversation flow picked up.
func CitizenMessageEmail(d NotificationData) EmailMessage {
	rows := []string{
		detailRow("From", d.CitizenPhone),
		detailRow("Type", orNA(d.MessageType)),
		detailRow("Message", orNA(d.Description)),
	}
	return EmailMessage{
		Subject: fmt.Sprintf("New WhatsApp Message from %s", d.CitizenPhone),
		HTML: renderLayout("#1a73e8", "New WhatsApp Message", d.RecipientName,
			"A citizen message arrived on the WhatsApp line and needs attention.",
			rows, d.companyName()),
		Text: fmt.Sprintf("New WhatsApp Message\n\nFrom: %s\nType: %s\nMessage: %s",
			d.CitizenPhone, orNA(d.MessageType), orNA(d.Description)),
	}
}

func detailRow(label, value string) string {
	return fmt.Sprintf(`<div class="detail-row"><span class="label">%s:</span> %s</div>`, label, value)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func renderLayout(accent, heading, recipient, intro string, rows []string, companyName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: %s; color: white; padding: 20px; text-align: center; }
    .content { background: #f9f9f9; padding: 20px; margin: 20px 0; }
    .detail-row { margin: 10px 0; }
    .label { font-weight: bold; color: %s; }
    .remarks { background: white; padding: 15px; border-left: 4px solid %s; margin: 15px 0; }
    .footer { text-align: center; color: #666; font-size: 12px; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>%s</h2>
    </div>
    <div class="content">
      <p>Dear %s,</p>
      <p>%s</p>
      %s
    </div>
    <div class="footer">
      <p>%s - Digital Portal</p>
    </div>
  </div>
</body>
</html>`, accent, accent, accent, heading, recipient, intro, strings.Join(rows, "\n      "), companyName)
}
