package client

type UploadURL struct {
	Key       string `json:"key"`
	SignedURL string `json:"signedUrl"`
	ExpiresIn int    `json:"expiresIn"`
}

type RegisterAttachmentRequest struct {
	Key      string `json:"key"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

type Attachment struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

type AgentTools struct {
	AllowHangUp   bool `json:"allowHangUp"`
	AllowCallback bool `json:"allowCallback"`
	LiveTransfer  bool `json:"liveTransfer"`
}

type AgentRequest struct {
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	CallType           string     `json:"callType"`
	Language           string     `json:"language"`
	Voice              string     `json:"voice"`
	Prompt             string     `json:"prompt"`
	Model              string     `json:"model"`
	Latency            float64    `json:"latency"`
	Speed              float64    `json:"speed"`
	CallScript         string     `json:"callScript,omitempty"`
	ServiceDescription string     `json:"serviceDescription,omitempty"`
	Attachments        []string   `json:"attachments"`
	Tools              AgentTools `json:"tools"`
}

type Agent struct {
	ID string `json:"id"`
	AgentRequest
}

type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Voice struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LanguageID string `json:"languageId"`
	Gender     string `json:"gender"`
}

type Prompt struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Model struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CreateTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type User struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
}

type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}
