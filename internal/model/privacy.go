package model

type PrivacySection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PrivacyPolicy struct {
	Title       string           `json:"title"`
	LastUpdated string           `json:"lastUpdated"`
	Sections    []PrivacySection `json:"sections"`
}
