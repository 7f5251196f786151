package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/utils"
)

const extractSystemPrompt = `You clean up music upload titles. Given a raw title, extract the song title and the artist names. Respond with a JSON object of the shape {"title": string, "artists": [string]}. Remove noise like "Official Music Video", "Lyrics", quality tags and emoji.`

const verifySystemPrompt = `You verify cleaned music metadata. Given the original raw title and a proposed {"title", "artists"} extraction, correct any mistakes and respond with the final JSON object of the same shape.`

// MetadataCleaner runs the two-stage AI cleanup with a deterministic local
// fallback. Stage 2 failures fall back to stage 1's result; stage 1 failures
// fall back to ParseTitle.
type MetadataCleaner struct {
	ai     *infra.AIService
	logger *infra.LoggerClient
}

func NewMetadataCleaner(ai *infra.AIService, logger *infra.LoggerClient) *MetadataCleaner {
	return &MetadataCleaner{ai: ai, logger: logger}
}

type cleanupResult struct {
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
}

// Clean derives a title and artist candidates from a raw source title.
// It never fails: the worst case is the deterministic parse of the raw
// string.
func (c *MetadataCleaner) Clean(ctx context.Context, raw string) ParsedMetadata {
	if c.ai == nil || !c.ai.Enabled() {
		return ParseTitle(raw)
	}

	stage1, err := c.runStage(ctx, []infra.ChatMessage{
		{Role: "system", Content: extractSystemPrompt},
		{Role: "user", Content: raw},
	})
	if err != nil {
		c.logger.WarningWithContextf(ctx, "[Ingest] AI cleanup stage 1 failed, using local parser: %v", err)
		return ParseTitle(raw)
	}

	stage1JSON, _ := json.Marshal(stage1)
	stage2, err := c.runStage(ctx, []infra.ChatMessage{
		{Role: "system", Content: verifySystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Raw title: %s\nProposed extraction: %s", raw, stage1JSON)},
	})
	if err != nil {
		c.logger.WarningWithContextf(ctx, "[Ingest] AI cleanup stage 2 failed, keeping stage 1 result: %v", err)
		return stage1.toParsed()
	}

	return stage2.toParsed()
}

func (c *MetadataCleaner) runStage(ctx context.Context, messages []infra.ChatMessage) (*cleanupResult, error) {
	content, err := c.ai.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	objectJSON, err := utils.ExtractJSONObject(content)
	if err != nil {
		return nil, fmt.Errorf("completion contained no JSON object: %w", err)
	}

	var result cleanupResult
	if err := json.Unmarshal([]byte(objectJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse cleanup result: %w", err)
	}
	if strings.TrimSpace(result.Title) == "" {
		return nil, fmt.Errorf("cleanup result has empty title")
	}

	return &result, nil
}

func (r *cleanupResult) toParsed() ParsedMetadata {
	artists := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		a = strings.TrimSpace(a)
		if a != "" {
			artists = append(artists, a)
		}
	}
	if len(artists) == 0 {
		artists = []string{strings.TrimSpace(r.Title)}
	}
	return ParsedMetadata{Title: strings.TrimSpace(r.Title), Artists: artists}
}
