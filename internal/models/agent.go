package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CallTypeInbound  = "inbound"
	CallTypeOutbound = "outbound"
)

type AgentTools struct {
	AllowHangUp   bool `json:"allowHangUp"`
	AllowCallback bool `json:"allowCallback"`
	LiveTransfer  bool `json:"liveTransfer"`
}

type Agent struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name               string     `json:"name" gorm:"not null"`
	Description        string     `json:"description"`
	CallType           string     `json:"callType" gorm:"not null"`
	Language           string     `json:"language" gorm:"not null"`
	Voice              string     `json:"voice" gorm:"not null"`
	Prompt             string     `json:"prompt" gorm:"not null"`
	Model              string     `json:"model" gorm:"not null"`
	Latency            float64    `json:"latency"`
	Speed              float64    `json:"speed"`
	CallScript         string     `json:"callScript" gorm:"type:text"`
	ServiceDescription string     `json:"serviceDescription" gorm:"type:text"`
	Attachments        []string   `json:"attachments" gorm:"serializer:json"` // attachment ids
	Tools              AgentTools `json:"tools" gorm:"embedded;embeddedPrefix:tool_"`
	CreatedAt          time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}
