package nats

import (
	"github.com/gosimple/slug"
)

// SubjectPrefix is the root of every quote request subject.
const SubjectPrefix = "quoter.requests"

// SubjectAll matches quote requests for every company.
// Example: "quoter.requests.>"
const SubjectAll = SubjectPrefix + ".>"

// SubjectForCompany returns the subject requests for a company are
// published on. The company name is slugged so it forms a single token.
// Example: "Acme Cabinets & Co." -> "quoter.requests.acme-cabinets-and-co"
func SubjectForCompany(company string) string {
	token := slug.Make(company)
	if token == "" {
		token = "default"
	}
	return SubjectPrefix + "." + token
}
