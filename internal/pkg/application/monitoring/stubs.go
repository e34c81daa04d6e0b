package monitoring

import (
	"context"
	"time"
)

type Weather struct {
	Temperature float64    `json:"temperature"`
	Humidity    int        `json:"humidity"`
	Condition   string     `json:"condition"`
	WindSpeed   float64    `json:"windSpeed"`
	Rainfall    float64    `json:"rainfall"`
	Forecast    []Forecast `json:"forecast"`
}

type Forecast struct {
	Date      time.Time `json:"date"`
	Temp      float64   `json:"temp"`
	Condition string    `json:"condition"`
}

type BatchStatus struct {
	LastProcessed  time.Time `json:"lastProcessed"`
	TotalRecords   int       `json:"totalRecords"`
	ProcessedToday int       `json:"processedToday"`
	FailedJobs     int       `json:"failedJobs"`
	ActiveJobs     int       `json:"activeJobs"`
	QueuedJobs     int       `json:"queuedJobs"`
	SystemHealth   string    `json:"systemHealth"`
}

// Weather is a fixed stand-in, there is no weather source behind it
func (s *service) Weather(ctx context.Context, boxNo, city string) Weather {
	now := s.now()
	day := 24 * time.Hour

	return Weather{
		Temperature: 22.5,
		Humidity:    68,
		Condition:   "Partly Cloudy",
		WindSpeed:   12.3,
		Rainfall:    0.0,
		Forecast: []Forecast{
			{Date: now.Add(1 * day), Temp: 23.0, Condition: "Sunny"},
			{Date: now.Add(2 * day), Temp: 21.5, Condition: "Rain"},
			{Date: now.Add(3 * day), Temp: 22.0, Condition: "Cloudy"},
		},
	}
}

// BatchStatus is a fixed stand-in, no batch jobs exist
func (s *service) BatchStatus(ctx context.Context) BatchStatus {
	return BatchStatus{
		LastProcessed:  s.now(),
		TotalRecords:   1250,
		ProcessedToday: 150,
		FailedJobs:     0,
		ActiveJobs:     2,
		QueuedJobs:     5,
		SystemHealth:   "GOOD",
	}
}
