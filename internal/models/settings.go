package models

// Settings is the site-wide singleton. There is exactly one settings document
// at a fixed well-known ID; callers never see or supply an ID for it.
type Settings struct {
	HeroTitle       string `json:"heroTitle" firestore:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle" firestore:"heroSubtitle"`
	HeroSummary     string `json:"heroSummary" firestore:"heroSummary"`
	AboutText       string `json:"aboutText" firestore:"aboutText"`
	CVURL           string `json:"cvUrl" firestore:"cvUrl"`
	ContactEmail    string `json:"contactEmail" firestore:"contactEmail"`
	ContactLinkedIn string `json:"contactLinkedIn" firestore:"contactLinkedIn"`
	ContactGitHub   string `json:"contactGitHub" firestore:"contactGitHub"`
	ContactWallet   string `json:"contactWallet" firestore:"contactWallet"`
}

func SettingsFromDoc(data map[string]interface{}) *Settings {
	return &Settings{
		HeroTitle:       asString(data["heroTitle"]),
		HeroSubtitle:    asString(data["heroSubtitle"]),
		HeroSummary:     asString(data["heroSummary"]),
		AboutText:       asString(data["aboutText"]),
		CVURL:           asString(data["cvUrl"]),
		ContactEmail:    asString(data["contactEmail"]),
		ContactLinkedIn: asString(data["contactLinkedIn"]),
		ContactGitHub:   asString(data["contactGitHub"]),
		ContactWallet:   asString(data["contactWallet"]),
	}
}

type SettingsUpdate struct {
	HeroTitle       *string `json:"heroTitle"`
	HeroSubtitle    *string `json:"heroSubtitle"`
	HeroSummary     *string `json:"heroSummary"`
	AboutText       *string `json:"aboutText"`
	CVURL           *string `json:"cvUrl"`
	ContactEmail    *string `json:"contactEmail"`
	ContactLinkedIn *string `json:"contactLinkedIn"`
	ContactGitHub   *string `json:"contactGitHub"`
	ContactWallet   *string `json:"contactWallet"`
}

func (u SettingsUpdate) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "heroTitle", u.HeroTitle)
	putString(m, "heroSubtitle", u.HeroSubtitle)
	putString(m, "heroSummary", u.HeroSummary)
	putString(m, "aboutText", u.AboutText)
	putString(m, "cvUrl", u.CVURL)
	putString(m, "contactEmail", u.ContactEmail)
	putString(m, "contactLinkedIn", u.ContactLinkedIn)
	putString(m, "contactGitHub", u.ContactGitHub)
	putString(m, "contactWallet", u.ContactWallet)
	return m
}

// WithDefaults returns a full settings document for first write: every text
// field defaults to the empty string, overlaid with the supplied fields.
func (u SettingsUpdate) WithDefaults() *Settings {
	s := &Settings{}
	if u.HeroTitle != nil {
		s.HeroTitle = *u.HeroTitle
	}
	if u.HeroSubtitle != nil {
		s.HeroSubtitle = *u.HeroSubtitle
	}
	if u.HeroSummary != nil {
		s.HeroSummary = *u.HeroSummary
	}
	if u.AboutText != nil {
		s.AboutText = *u.AboutText
	}
	if u.CVURL != nil {
		s.CVURL = *u.CVURL
	}
	if u.ContactEmail != nil {
		s.ContactEmail = *u.ContactEmail
	}
	if u.ContactLinkedIn != nil {
		s.ContactLinkedIn = *u.ContactLinkedIn
	}
	if u.ContactGitHub != nil {
		s.ContactGitHub = *u.ContactGitHub
	}
	if u.ContactWallet != nil {
		s.ContactWallet = *u.ContactWallet
	}
	return s
}
