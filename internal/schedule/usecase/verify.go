package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/schedule"
	"swim-schedule-manager/pkg/datemath"
	"swim-schedule-manager/pkg/deepseek"
)

// verify runs the secondary pass over the primary transcript and diffs the
// two segment sets. Any failure of the secondary pass degrades to a single
// verification_error record; it never fails the parse.
func (uc *implUseCase) verify(ctx context.Context, extraction schedule.Extraction) []model.Misalignment {
	if uc.verifier == nil {
		return nil
	}

	secondary, err := uc.reExtract(ctx, extraction.Transcript)
	if err != nil {
		uc.l.Warnf(ctx, "Parse: verification pass failed (non-fatal): %v", err)
		return []model.Misalignment{{
			Type:         model.MisalignmentVerificationError,
			PrimaryValue: fmt.Sprintf("Cross-check unavailable: %v", err),
		}}
	}

	misalignments := diffSegments(extraction.Segments, secondary)
	uc.l.Infof(ctx, "Parse: verification pass produced %d segments, %d misalignments",
		len(secondary), len(misalignments))
	return misalignments
}

// reExtract asks the secondary model to independently extract segments from
// the transcript.
func (uc *implUseCase) reExtract(ctx context.Context, transcript string) ([]schedule.Segment, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("primary pass returned an empty transcript")
	}

	resp, err := uc.verifier.GenerateContent(ctx, &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: "system", Content: deepseek.BuildVerificationPrompt(model.Roster)},
			{Role: "user", Content: transcript},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from verification model")
	}

	cleaned := sanitizeJSONResponse(resp.Choices[0].Message.Content)

	var segments []schedule.Segment
	if err := json.Unmarshal([]byte(cleaned), &segments); err != nil {
		return nil, fmt.Errorf("undecodable verification output: %w", err)
	}
	return segments, nil
}

// diffSegments compares the two extraction passes. Segments pair up by
// (date, child, kind); paired segments are compared on time and location,
// unpaired ones are reported as missing from the other pass. Rest-day rows
// and unknown children are ignored on both sides.
func diffSegments(primary, secondary []schedule.Segment) []model.Misalignment {
	type side struct {
		seg  schedule.Segment
		used bool
	}

	secondaryByKey := make(map[string][]*side)
	var secondaryKeys []string
	for _, seg := range secondary {
		if seg.Kind == schedule.KindNone || !model.KnownChild(seg.Child) {
			continue
		}
		key := pairKey(seg)
		if _, ok := secondaryByKey[key]; !ok {
			secondaryKeys = append(secondaryKeys, key)
		}
		secondaryByKey[key] = append(secondaryByKey[key], &side{seg: seg})
	}

	var out []model.Misalignment

	for _, seg := range primary {
		if seg.Kind == schedule.KindNone || !model.KnownChild(seg.Child) {
			continue
		}

		var match *side
		for _, candidate := range secondaryByKey[pairKey(seg)] {
			if !candidate.used {
				match = candidate
				break
			}
		}
		if match == nil {
			out = append(out, misalignment(seg, model.MisalignmentMissingInSecondary, describeSegment(seg), ""))
			continue
		}
		match.used = true

		out = append(out, compareSegments(seg, match.seg)...)
	}

	for _, key := range secondaryKeys {
		for _, candidate := range secondaryByKey[key] {
			if !candidate.used {
				out = append(out, misalignment(candidate.seg, model.MisalignmentMissingInPrimary, "", describeSegment(candidate.seg)))
			}
		}
	}

	return out
}

// compareSegments reports time and location disagreements between one
// paired primary/secondary segment.
func compareSegments(p, s schedule.Segment) []model.Misalignment {
	var out []model.Misalignment

	pStart, pEnd, pErr := datemath.ParseTimeRange(p.Time)
	sStart, sEnd, sErr := datemath.ParseTimeRange(s.Time)
	switch {
	case pErr != nil || sErr != nil:
		if !strings.EqualFold(collapseSpaces(p.Time), collapseSpaces(s.Time)) {
			out = append(out, misalignment(p, model.MisalignmentTimeFormat, p.Time, s.Time))
		}
	case pStart != sStart || pEnd != sEnd:
		out = append(out, misalignment(p, model.MisalignmentTimeMismatch, p.Time, s.Time))
	}

	if !strings.EqualFold(strings.TrimSpace(p.Location), strings.TrimSpace(s.Location)) {
		out = append(out, misalignment(p, model.MisalignmentLocationMismatch, p.Location, s.Location))
	}

	return out
}

func misalignment(seg schedule.Segment, kind model.MisalignmentType, primaryValue, secondaryValue string) model.Misalignment {
	child := canonicalChild(seg.Child)
	return model.Misalignment{
		Date:           strings.TrimSpace(seg.Date),
		Child:          &child,
		Type:           kind,
		PrimaryValue:   primaryValue,
		SecondaryValue: secondaryValue,
	}
}

func pairKey(seg schedule.Segment) string {
	kind := seg.Kind
	if kind == "" {
		kind = schedule.KindPool
	}
	return segmentKey(seg.Date, seg.Child) + "|" + strings.ToLower(kind)
}

func describeSegment(seg schedule.Segment) string {
	return fmt.Sprintf("%s %s %s @%s (%s)", seg.Date, seg.Child, seg.Time, seg.Location, seg.Kind)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
