package models

import "time"

// Experience is a work history entry. Dates are free-text strings, not parsed
// dates; display order comes from createdAt, newest first.
type Experience struct {
	ID          string    `json:"id" firestore:"-"` // Firestore document ID
	Role        string    `json:"role" firestore:"role"`
	Company     string    `json:"company" firestore:"company"`
	StartDate   string    `json:"startDate" firestore:"startDate"`
	EndDate     string    `json:"endDate" firestore:"endDate"`
	Description string    `json:"description" firestore:"description"`
	TechStack   []string  `json:"techStack" firestore:"techStack"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ExperienceFromDoc decodes a stored field map, defaulting missing or
// malformed fields.
func ExperienceFromDoc(id string, data map[string]interface{}) *Experience {
	return &Experience{
		ID:          id,
		Role:        asString(data["role"]),
		Company:     asString(data["company"]),
		StartDate:   asString(data["startDate"]),
		EndDate:     asString(data["endDate"]),
		Description: asString(data["description"]),
		TechStack:   asStringSlice(data["techStack"]),
		CreatedAt:   asTime(data["createdAt"]),
	}
}

// ExperienceUpdate carries a partial update. Nil fields are left untouched.
// ID and createdAt are not representable here and therefore not updatable.
type ExperienceUpdate struct {
	Role        *string  `json:"role"`
	Company     *string  `json:"company"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description *string  `json:"description"`
	TechStack   []string `json:"techStack"`
}

// Map returns the supplied fields as a Firestore merge map.
func (u ExperienceUpdate) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "role", u.Role)
	putString(m, "company", u.Company)
	putString(m, "startDate", u.StartDate)
	putString(m, "endDate", u.EndDate)
	putString(m, "description", u.Description)
	if u.TechStack != nil {
		m["techStack"] = u.TechStack
	}
	return m
}

func putString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]interface{}, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}
