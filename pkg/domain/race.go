package domain

import "time"

// RaceEvent represents a race weekend (meeting) with derived status flags
type RaceEvent struct {
	Key          int       `json:"key"`
	Name         string    `json:"name"`
	OfficialName string    `json:"official_name,omitempty"`
	Location     string    `json:"location"`
	Country      string    `json:"country"`
	CountryCode  string    `json:"country_code,omitempty"`
	CountryFlag  string    `json:"country_flag,omitempty"`
	CircuitName  string    `json:"circuit_name,omitempty"`
	CircuitImage string    `json:"circuit_image,omitempty"`
	DateStart    time.Time `json:"date_start"`
	DateEnd      time.Time `json:"date_end"`
	Round        int       `json:"round,omitempty"`
	IsUpcoming   bool      `json:"is_upcoming"`
	IsCompleted  bool      `json:"is_completed"`
}

// Session represents a single session (practice, qualifying, race) of a meeting
type Session struct {
	Key        int       `json:"key"`
	MeetingKey int       `json:"meeting_key"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Location   string    `json:"location"`
	Country    string    `json:"country"`
	DateStart  time.Time `json:"date_start"`
	DateEnd    time.Time `json:"date_end"`
	Year       int       `json:"year"`
}
