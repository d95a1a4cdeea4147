package dto

import (
	"time"

	"github.com/google/uuid"
)

// InsightResponse is the API representation of a generated insight
type InsightResponse struct {
	ID        uuid.UUID `json:"id"`
	Period    string    `json:"period"`
	Content   string    `json:"content"`
	LLMModel  string    `json:"llmModel"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsightListResponse is a page of insights with pagination metadata
type InsightListResponse struct {
	Insights   []InsightResponse `json:"insights"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Take       int               `json:"take"`
	TotalPages int               `json:"totalPages"`
}

// GenerateManyResponse reports how many generation jobs were enqueued
type GenerateManyResponse struct {
	Enqueued int    `json:"enqueued"`
	Period   string `json:"period"`
}
