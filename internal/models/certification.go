package models

import "time"

// Certification is a credential entry. Date is free text; listings order by
// it descending with a plain string comparison, not a date parse.
type Certification struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Issuer      string    `json:"issuer" firestore:"issuer"`
	Date        string    `json:"date" firestore:"date"`
	Description string    `json:"description" firestore:"description"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func CertificationFromDoc(id string, data map[string]interface{}) *Certification {
	return &Certification{
		ID:          id,
		Title:       asString(data["title"]),
		Issuer:      asString(data["issuer"]),
		Date:        asString(data["date"]),
		Description: asString(data["description"]),
		CreatedAt:   asTime(data["createdAt"]),
	}
}

type CertificationUpdate struct {
	Title       *string `json:"title"`
	Issuer      *string `json:"issuer"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (u CertificationUpdate) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "title", u.Title)
	putString(m, "issuer", u.Issuer)
	putString(m, "date", u.Date)
	putString(m, "description", u.Description)
	return m
}
