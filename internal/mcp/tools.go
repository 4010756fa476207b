package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"recall/internal/store"
)

type CreateEntityInput struct {
	Name         string   `json:"name" jsonschema:"unique entity name"`
	Type         string   `json:"type" jsonschema:"entity type, e.g. person, project, api"`
	Observations []string `json:"observations,omitempty" jsonschema:"initial observations"`
}

type AddObservationInput struct {
	Entity  string `json:"entity" jsonschema:"entity name"`
	Content string `json:"content" jsonschema:"observation text"`
}

type AddRelationInput struct {
	From         string `json:"from" jsonschema:"source entity name"`
	To           string `json:"to" jsonschema:"target entity name"`
	RelationType string `json:"relation_type" jsonschema:"relation verb, e.g. uses, owns"`
}

type GetEntityInput struct {
	Name string `json:"name" jsonschema:"entity name"`
}

type DeleteEntityInput struct {
	Name string `json:"name" jsonschema:"entity name"`
}

type DeleteObservationInput struct {
	ID int64 `json:"id" jsonschema:"observation id"`
}

type DeleteRelationInput struct {
	ID int64 `json:"id" jsonschema:"relation id"`
}

type LogRunInput struct {
	Directive     string `json:"directive" jsonschema:"directive name"`
	Status        string `json:"status" jsonschema:"started, success, failed, or partial"`
	Notes         string `json:"notes,omitempty" jsonschema:"execution notes"`
	Error         string `json:"error,omitempty" jsonschema:"error message if failed"`
	InputSummary  string `json:"input_summary,omitempty" jsonschema:"input summary"`
	OutputSummary string `json:"output_summary,omitempty" jsonschema:"output summary"`
}

type GetRunsInput struct {
	Directive string `json:"directive,omitempty" jsonschema:"filter by directive name"`
	Status    string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum results, default 10"`
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring to search for"`
}

type ReadGraphInput struct{}

type ObservationOutput struct {
	ID        int64  `json:"id"`
	Entity    string `json:"entity,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type RelationOutput struct {
	ID           int64  `json:"id"`
	From         string `json:"from"`
	To           string `json:"to"`
	RelationType string `json:"relation_type"`
	CreatedAt    string `json:"created_at"`
}

type EntityOutput struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	EntityType   string              `json:"type"`
	CreatedAt    string              `json:"created_at"`
	Observations []ObservationOutput `json:"observations"`
	RelationsOut []RelationOutput    `json:"relations_outgoing"`
	RelationsIn  []RelationOutput    `json:"relations_incoming"`
}

type RunOutput struct {
	ID            int64  `json:"id"`
	Directive     string `json:"directive"`
	StartedAt     string `json:"started_at"`
	EndedAt       string `json:"ended_at,omitempty"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message,omitempty"`
	Notes         string `json:"notes,omitempty"`
	InputSummary  string `json:"input_summary,omitempty"`
	OutputSummary string `json:"output_summary,omitempty"`
}

type IDOutput struct {
	ID int64 `json:"id"`
}

type DeletedOutput struct {
	Deleted string `json:"deleted"`
}

type GetRunsOutput struct {
	Runs []RunOutput `json:"runs"`
}

type SearchOutput struct {
	Entities     []EntityOutput      `json:"entities"`
	Observations []ObservationOutput `json:"observations"`
	Runs         []RunOutput         `json:"runs"`
}

type GraphStatsOutput struct {
	EntityCount      int `json:"entity_count"`
	RelationCount    int `json:"relation_count"`
	ObservationCount int `json:"observation_count"`
	RunCount         int `json:"directive_run_count"`
}

type ReadGraphOutput struct {
	Entities  []EntityOutput   `json:"entities"`
	Relations []RelationOutput `json:"relations"`
	Stats     GraphStatsOutput `json:"stats"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_entity",
		Description: "Create a named entity with optional initial observations",
	}, s.handleCreateEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_observation",
		Description: "Append an observation to an existing entity",
	}, s.handleAddObservation)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_relation",
		Description: "Create a directed typed relation between two entities",
	}, s.handleAddRelation)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entity",
		Description: "Retrieve an entity with its observations and relations",
	}, s.handleGetEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_entity",
		Description: "Delete an entity, cascading to its observations and relations",
	}, s.handleDeleteEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_observation",
		Description: "Delete a single observation by id",
	}, s.handleDeleteObservation)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_relation",
		Description: "Delete a single relation by id",
	}, s.handleDeleteRelation)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "log_run",
		Description: "Record one directive execution with a status",
	}, s.handleLogRun)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_runs",
		Description: "List directive run history, most recent first",
	}, s.handleGetRuns)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_memory",
		Description: "Search entities, observations, and run history",
	}, s.handleSearch)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "read_graph",
		Description: "Read the entire knowledge graph",
	}, s.handleReadGraph)
}

func (s *Server) handleCreateEntity(ctx context.Context, req *sdk.CallToolRequest, input CreateEntityInput) (*sdk.CallToolResult, EntityOutput, error) {
	if input.Name == "" {
		return nil, EntityOutput{}, fmt.Errorf("name is required")
	}
	if input.Type == "" {
		return nil, EntityOutput{}, fmt.Errorf("type is required")
	}
	entity, err := s.db.CreateEntity(ctx, input.Name, input.Type, input.Observations)
	if err != nil {
		return nil, EntityOutput{}, err
	}
	s.log.Debug("entity created", zap.String("name", input.Name))
	return nil, entityOutput(entity), nil
}

func (s *Server) handleAddObservation(ctx context.Context, req *sdk.CallToolRequest, input AddObservationInput) (*sdk.CallToolResult, IDOutput, error) {
	if input.Entity == "" {
		return nil, IDOutput{}, fmt.Errorf("entity is required")
	}
	id, err := s.db.AddObservation(ctx, input.Entity, input.Content)
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleAddRelation(ctx context.Context, req *sdk.CallToolRequest, input AddRelationInput) (*sdk.CallToolResult, IDOutput, error) {
	if input.From == "" || input.To == "" {
		return nil, IDOutput{}, fmt.Errorf("from and to are required")
	}
	id, err := s.db.AddRelation(ctx, input.From, input.To, input.RelationType)
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleGetEntity(ctx context.Context, req *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, EntityOutput, error) {
	if input.Name == "" {
		return nil, EntityOutput{}, fmt.Errorf("name is required")
	}
	entity, err := s.db.GetEntity(ctx, input.Name)
	if err != nil {
		return nil, EntityOutput{}, err
	}
	return nil, entityOutput(entity), nil
}

func (s *Server) handleDeleteEntity(ctx context.Context, req *sdk.CallToolRequest, input DeleteEntityInput) (*sdk.CallToolResult, DeletedOutput, error) {
	if input.Name == "" {
		return nil, DeletedOutput{}, fmt.Errorf("name is required")
	}
	if err := s.db.DeleteEntity(ctx, input.Name); err != nil {
		return nil, DeletedOutput{}, err
	}
	s.log.Debug("entity deleted", zap.String("name", input.Name))
	return nil, DeletedOutput{Deleted: input.Name}, nil
}

func (s *Server) handleDeleteObservation(ctx context.Context, req *sdk.CallToolRequest, input DeleteObservationInput) (*sdk.CallToolResult, IDOutput, error) {
	if err := s.db.DeleteObservation(ctx, input.ID); err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: input.ID}, nil
}

func (s *Server) handleDeleteRelation(ctx context.Context, req *sdk.CallToolRequest, input DeleteRelationInput) (*sdk.CallToolResult, IDOutput, error) {
	if err := s.db.DeleteRelation(ctx, input.ID); err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: input.ID}, nil
}

func (s *Server) handleLogRun(ctx context.Context, req *sdk.CallToolRequest, input LogRunInput) (*sdk.CallToolResult, IDOutput, error) {
	if input.Directive == "" {
		return nil, IDOutput{}, fmt.Errorf("directive is required")
	}
	id, err := s.db.LogRun(ctx, store.RunInput{
		Directive:     input.Directive,
		Status:        store.RunStatus(input.Status),
		Notes:         input.Notes,
		ErrorMessage:  input.Error,
		InputSummary:  input.InputSummary,
		OutputSummary: input.OutputSummary,
	})
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleGetRuns(ctx context.Context, req *sdk.CallToolRequest, input GetRunsInput) (*sdk.CallToolResult, GetRunsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}
	runs, err := s.db.GetRuns(ctx, input.Directive, store.RunStatus(input.Status), limit)
	if err != nil {
		return nil, GetRunsOutput{}, err
	}

	output := make([]RunOutput, 0, len(runs))
	for _, run := range runs {
		output = append(output, runOutput(run))
	}
	return nil, GetRunsOutput{Runs: output}, nil
}

func (s *Server) handleSearch(ctx context.Context, req *sdk.CallToolRequest, input SearchInput) (*sdk.CallToolResult, SearchOutput, error) {
	if input.Query == "" {
		return nil, SearchOutput{}, fmt.Errorf("query is required")
	}
	results, err := s.db.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Entities:     make([]EntityOutput, 0, len(results.Entities)),
		Observations: make([]ObservationOutput, 0, len(results.Observations)),
		Runs:         make([]RunOutput, 0, len(results.Runs)),
	}
	for i := range results.Entities {
		output.Entities = append(output.Entities, entityOutput(&results.Entities[i]))
	}
	for _, obs := range results.Observations {
		output.Observations = append(output.Observations, observationOutput(obs))
	}
	for _, run := range results.Runs {
		output.Runs = append(output.Runs, runOutput(run))
	}
	return nil, output, nil
}

func (s *Server) handleReadGraph(ctx context.Context, req *sdk.CallToolRequest, input ReadGraphInput) (*sdk.CallToolResult, ReadGraphOutput, error) {
	graph, err := s.db.ReadGraph(ctx)
	if err != nil {
		return nil, ReadGraphOutput{}, err
	}

	output := ReadGraphOutput{
		Entities:  make([]EntityOutput, 0, len(graph.Entities)),
		Relations: make([]RelationOutput, 0, len(graph.Relations)),
		Stats: GraphStatsOutput{
			EntityCount:      graph.Stats.EntityCount,
			RelationCount:    graph.Stats.RelationCount,
			ObservationCount: graph.Stats.ObservationCount,
			RunCount:         graph.Stats.RunCount,
		},
	}
	for i := range graph.Entities {
		output.Entities = append(output.Entities, entityOutput(&graph.Entities[i]))
	}
	for _, rel := range graph.Relations {
		output.Relations = append(output.Relations, relationOutput(rel))
	}
	return nil, output, nil
}

func entityOutput(entity *store.Entity) EntityOutput {
	if entity == nil {
		return EntityOutput{}
	}
	out := EntityOutput{
		ID:           entity.ID,
		Name:         entity.Name,
		EntityType:   entity.EntityType,
		CreatedAt:    formatTimestamp(entity.CreatedAt),
		Observations: make([]ObservationOutput, 0, len(entity.Observations)),
		RelationsOut: make([]RelationOutput, 0, len(entity.RelationsOut)),
		RelationsIn:  make([]RelationOutput, 0, len(entity.RelationsIn)),
	}
	for _, obs := range entity.Observations {
		out.Observations = append(out.Observations, observationOutput(obs))
	}
	for _, rel := range entity.RelationsOut {
		out.RelationsOut = append(out.RelationsOut, relationOutput(rel))
	}
	for _, rel := range entity.RelationsIn {
		out.RelationsIn = append(out.RelationsIn, relationOutput(rel))
	}
	return out
}

func observationOutput(obs store.Observation) ObservationOutput {
	return ObservationOutput{
		ID:        obs.ID,
		Entity:    obs.EntityName,
		Content:   obs.Content,
		CreatedAt: formatTimestamp(obs.CreatedAt),
	}
}

func relationOutput(rel store.Relation) RelationOutput {
	return RelationOutput{
		ID:           rel.ID,
		From:         rel.FromEntity,
		To:           rel.ToEntity,
		RelationType: rel.RelationType,
		CreatedAt:    formatTimestamp(rel.CreatedAt),
	}
}

func runOutput(run store.Run) RunOutput {
	out := RunOutput{
		ID:            run.ID,
		Directive:     run.Directive,
		StartedAt:     formatTimestamp(run.StartedAt),
		Status:        string(run.Status),
		ErrorMessage:  run.ErrorMessage,
		Notes:         run.Notes,
		InputSummary:  run.InputSummary,
		OutputSummary: run.OutputSummary,
	}
	if run.EndedAt != nil {
		out.EndedAt = formatTimestamp(*run.EndedAt)
	}
	return out
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
