package models

import "time"

// SkillCategories is the closed set of accepted skill categories. Writes are
// validated against it; reads stay permissive.
var SkillCategories = []string{
	"Blockchain",
	"Backend",
	"Frontend",
	"DevOps",
	"AI",
	"Leadership",
}

// ValidSkillCategory reports whether c is one of SkillCategories.
func ValidSkillCategory(c string) bool {
	for _, cat := range SkillCategories {
		if cat == c {
			return true
		}
	}
	return false
}

type Skill struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Category  string    `json:"category" firestore:"category"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func SkillFromDoc(id string, data map[string]interface{}) *Skill {
	return &Skill{
		ID:        id,
		Name:      asString(data["name"]),
		Category:  asString(data["category"]),
		CreatedAt: asTime(data["createdAt"]),
	}
}

type SkillUpdate struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

func (u SkillUpdate) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "name", u.Name)
	putString(m, "category", u.Category)
	return m
}
