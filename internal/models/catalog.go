package models

// Select options offered by the agent form. IDs are stable slugs
// (e.g. "en-US", "gpt-4o") rather than generated uuids.

type Language struct {
	ID   string `json:"id" gorm:"primaryKey" yaml:"id"`
	Name string `json:"name" gorm:"not null" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

type Voice struct {
	ID         string `json:"id" gorm:"primaryKey" yaml:"id"`
	Name       string `json:"name" gorm:"not null" yaml:"name"`
	LanguageID string `json:"languageId" gorm:"index" yaml:"languageId"`
	Gender     string `json:"gender" yaml:"gender"`
}

type Prompt struct {
	ID      string `json:"id" gorm:"primaryKey" yaml:"id"`
	Name    string `json:"name" gorm:"not null" yaml:"name"`
	Content string `json:"content" gorm:"type:text" yaml:"content"`
}

type Model struct {
	ID       string `json:"id" gorm:"primaryKey" yaml:"id"`
	Name     string `json:"name" gorm:"not null" yaml:"name"`
	Provider string `json:"provider" yaml:"provider"`
}
