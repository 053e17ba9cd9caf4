package models

import "time"

// Project is a portfolio project. ImageUrl points at an object-store path
// uploaded under the project's ID after creation.
type Project struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Impact      string    `json:"impact" firestore:"impact"`
	TechStack   []string  `json:"techStack" firestore:"techStack"`
	GithubURL   string    `json:"githubUrl" firestore:"githubUrl"`
	LiveURL     string    `json:"liveUrl" firestore:"liveUrl"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	Featured    bool      `json:"featured" firestore:"featured"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func ProjectFromDoc(id string, data map[string]interface{}) *Project {
	return &Project{
		ID:          id,
		Title:       asString(data["title"]),
		Description: asString(data["description"]),
		Impact:      asString(data["impact"]),
		TechStack:   asStringSlice(data["techStack"]),
		GithubURL:   asString(data["githubUrl"]),
		LiveURL:     asString(data["liveUrl"]),
		ImageURL:    asString(data["imageUrl"]),
		Featured:    asBool(data["featured"]),
		CreatedAt:   asTime(data["createdAt"]),
	}
}

type ProjectUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Impact      *string  `json:"impact"`
	TechStack   []string `json:"techStack"`
	GithubURL   *string  `json:"githubUrl"`
	LiveURL     *string  `json:"liveUrl"`
	ImageURL    *string  `json:"imageUrl"`
	Featured    *bool    `json:"featured"`
}

func (u ProjectUpdate) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "title", u.Title)
	putString(m, "description", u.Description)
	putString(m, "impact", u.Impact)
	if u.TechStack != nil {
		m["techStack"] = u.TechStack
	}
	putString(m, "githubUrl", u.GithubURL)
	putString(m, "liveUrl", u.LiveURL)
	putString(m, "imageUrl", u.ImageURL)
	putBool(m, "featured", u.Featured)
	return m
}
