package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/schedule"
	"swim-schedule-manager/pkg/gemini"
)

// Parse extracts practice events from a schedule PDF. The primary pass reads
// the PDF directly; the secondary pass independently re-extracts from the
// primary's transcript and disagreements are reported as misalignments. A
// verification failure never fails the parse.
func (uc *implUseCase) Parse(ctx context.Context, input schedule.ParseInput) (schedule.ParseOutput, error) {
	if len(input.PDF) == 0 {
		return schedule.ParseOutput{}, schedule.ErrEmptyFile
	}

	sum := sha256.Sum256(input.PDF)
	key := hex.EncodeToString(sum[:])
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Infof(ctx, "Parse: cache hit for %s (%s)", input.FileName, key[:12])
		return cached, nil
	}

	uc.l.Infof(ctx, "Parse: extracting %s (%d bytes)", input.FileName, len(input.PDF))

	extraction, err := uc.extract(ctx, input.PDF)
	if err != nil {
		return schedule.ParseOutput{}, err
	}

	events := buildEvents(extraction.Segments)
	uc.l.Infof(ctx, "Parse: primary pass produced %d segments, %d merged events",
		len(extraction.Segments), len(events))

	misalignments := missingMeridiemMisalignments(events)
	misalignments = append(misalignments, uc.verify(ctx, extraction)...)

	output := schedule.ParseOutput{
		Events:        events,
		Misalignments: misalignments,
	}

	uc.cache.Add(key, output)
	return output, nil
}

// extract runs the primary pass: the PDF goes to Gemini inline and comes
// back as a transcript plus raw per-row segments.
func (uc *implUseCase) extract(ctx context.Context, pdf []byte) (schedule.Extraction, error) {
	prompt := gemini.BuildExtractionPrompt(model.Roster, venueCodes())

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Parts: []gemini.Part{
					{Text: prompt},
					{InlineData: &gemini.InlineData{
						MimeType: "application/pdf",
						Data:     base64.StdEncoding.EncodeToString(pdf),
					}},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.1,
			MaxOutputTokens: 8192,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return schedule.Extraction{}, fmt.Errorf("extraction request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return schedule.Extraction{}, schedule.ErrBadModelOutput
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text
	cleaned := sanitizeJSONResponse(responseText)

	var extraction schedule.Extraction
	if err := json.Unmarshal([]byte(cleaned), &extraction); err != nil {
		uc.l.Errorf(ctx, "Parse: undecodable primary output. Raw=%q Cleaned=%q", responseText, cleaned)
		return schedule.Extraction{}, fmt.Errorf("%w: %v", schedule.ErrBadModelOutput, err)
	}

	return extraction, nil
}

func venueCodes() []string {
	codes := make([]string, 0, len(model.Venues))
	for code := range model.Venues {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
