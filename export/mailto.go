// Package export turns quotation documents into the formats the front end
// hands off to the outside world: a mailto link, printable HTML. Everything
// here is a read-only consumer of the document model.
package export

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/cgrworks/quotation-api/models"
)

const (
	companyName  = "Century Global Resources Pte Ltd"
	companyTel   = "+65 6457 5855"
	companyEmail = "admin@centurygr.com"
)

// EmailSubject builds the subject line for a quotation email.
func EmailSubject(q models.Quotation) string {
	serviceType := q.Project.ServiceType
	if serviceType == "" {
		serviceType = "Construction"
	}
	return fmt.Sprintf("Quotation %s - %s Works", q.QuotationNumber, serviceType)
}

// EmailBody builds the plain-text body for a quotation email.
func EmailBody(q models.Quotation) string {
	serviceType := q.Project.ServiceType
	if serviceType == "" {
		serviceType = "Construction"
	}
	contactPerson := q.Client.ContactPerson
	if contactPerson == "" {
		contactPerson = "Sir/Madam"
	}
	location := q.Client.Name
	if location == "" {
		location = "your location"
	}

	return fmt.Sprintf(`Dear %s,

Thank you for your interest in our services. Please find attached our detailed quotation for the %s works at %s.

Quotation Details:
- Quotation Number: %s
- Project Type: %s
- Total Amount: $%.2f
- Validity: %d Days

If you have any questions or require additional information, please do not hesitate to contact us.

Best regards,
%s
Tel: %s
Email: %s`,
		contactPerson, serviceType, location,
		q.QuotationNumber, serviceType, q.Totals.Total, q.ValidityDays,
		companyName, companyTel, companyEmail)
}

// MailtoLink builds a mailto: URL carrying the quotation email. It fails
// only when the client has no email address.
func MailtoLink(q models.Quotation) (string, error) {
	if q.Client.Email == "" {
		return "", errors.New("client email not available")
	}
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		q.Client.Email,
		url.QueryEscape(EmailSubject(q)),
		url.QueryEscape(EmailBody(q)),
	), nil
}
