package store

import "time"

type Entity struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	EntityType   string        `json:"type"`
	CreatedAt    time.Time     `json:"created_at"`
	Observations []Observation `json:"observations"`
	RelationsOut []Relation    `json:"relations_outgoing"`
	RelationsIn  []Relation    `json:"relations_incoming"`
}

type Observation struct {
	ID         int64     `json:"id"`
	EntityName string    `json:"entity,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type Relation struct {
	ID           int64     `json:"id"`
	FromEntity   string    `json:"from"`
	ToEntity     string    `json:"to"`
	RelationType string    `json:"relation_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type RunInput struct {
	Directive     string
	Status        RunStatus
	Notes         string
	ErrorMessage  string
	InputSummary  string
	OutputSummary string
}

type Run struct {
	ID            int64      `json:"id"`
	Directive     string     `json:"directive"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Status        RunStatus  `json:"status"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	InputSummary  string     `json:"input_summary,omitempty"`
	OutputSummary string     `json:"output_summary,omitempty"`
}

// SearchResults groups matches by source kind. Each group is ordered
// most-recent-first and de-duplicated by row id.
type SearchResults struct {
	Entities     []Entity      `json:"entities"`
	Observations []Observation `json:"observations"`
	Runs         []Run         `json:"runs"`
}

type GraphStats struct {
	EntityCount      int `json:"entity_count"`
	RelationCount    int `json:"relation_count"`
	ObservationCount int `json:"observation_count"`
	RunCount         int `json:"directive_run_count"`
}

type Graph struct {
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
	Stats     GraphStats `json:"stats"`
}
