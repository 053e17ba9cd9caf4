package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sp(s string) *string { return &s }

func TestExperienceFromDocDefaults(t *testing.T) {
	exp := ExperienceFromDoc("e1", map[string]interface{}{})

	assert.Equal(t, "e1", exp.ID)
	assert.Empty(t, exp.Role)
	assert.Empty(t, exp.Company)
	assert.Equal(t, []string{}, exp.TechStack)
	assert.True(t, exp.CreatedAt.IsZero())
}

func TestExperienceFromDocIgnoresMistypedFields(t *testing.T) {
	exp := ExperienceFromDoc("e1", map[string]interface{}{
		"role":      42,
		"company":   "Acme",
		"techStack": []interface{}{"Go", 7, "GCP"},
		"createdAt": "not a time",
	})

	assert.Empty(t, exp.Role)
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, []string{"Go", "GCP"}, exp.TechStack)
	assert.True(t, exp.CreatedAt.IsZero())
}

func TestProjectFromDoc(t *testing.T) {
	now := time.Now()
	p := ProjectFromDoc("p1", map[string]interface{}{
		"title":     "Portfolio",
		"featured":  true,
		"techStack": []string{"Go"},
		"createdAt": now,
	})

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Portfolio", p.Title)
	assert.True(t, p.Featured)
	assert.Equal(t, []string{"Go"}, p.TechStack)
	assert.Equal(t, now, p.CreatedAt)
}

func TestProjectFromDocFeaturedDefaultsFalse(t *testing.T) {
	p := ProjectFromDoc("p1", map[string]interface{}{"featured": "yes"})
	assert.False(t, p.Featured)
}

func TestUserFromDocUnknownRoleIsUser(t *testing.T) {
	for _, raw := range []interface{}{nil, "", "superadmin", 3} {
		u := UserFromDoc("u1", map[string]interface{}{"role": raw})
		assert.Equal(t, RoleUser, u.Role)
		assert.False(t, u.Role.IsAdmin())
	}

	u := UserFromDoc("u1", map[string]interface{}{"role": "admin"})
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.Role.IsAdmin())
}

func TestExperienceUpdateMapOnlySuppliedFields(t *testing.T) {
	m := ExperienceUpdate{Company: sp("Acme"), TechStack: []string{"Go"}}.Map()

	assert.Equal(t, map[string]interface{}{
		"company":   "Acme",
		"techStack": []string{"Go"},
	}, m)
}

func TestExperienceUpdateMapEmpty(t *testing.T) {
	assert.Empty(t, ExperienceUpdate{}.Map())
}

func TestProjectUpdateMapIncludesFalse(t *testing.T) {
	featured := false
	m := ProjectUpdate{Featured: &featured}.Map()

	assert.Equal(t, map[string]interface{}{"featured": false}, m)
}

func TestSettingsUpdateWithDefaults(t *testing.T) {
	s := SettingsUpdate{HeroTitle: sp("Hi"), ContactGitHub: sp("https://github.com/ada")}.WithDefaults()

	assert.Equal(t, "Hi", s.HeroTitle)
	assert.Equal(t, "https://github.com/ada", s.ContactGitHub)
	assert.Empty(t, s.HeroSubtitle)
	assert.Empty(t, s.AboutText)
	assert.Empty(t, s.CVURL)
}

func TestValidSkillCategory(t *testing.T) {
	for _, c := range SkillCategories {
		assert.True(t, ValidSkillCategory(c), c)
	}
	assert.False(t, ValidSkillCategory("Circus"))
	assert.False(t, ValidSkillCategory("backend")) // case-sensitive
	assert.False(t, ValidSkillCategory(""))
}
