package annotation

import (
	"context"
	"fmt"
	"strings"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/annotation"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/llm"
)

const promptHeader = `You are reviewing weekly timesheet computations for a payroll auditor.
For each employee line below (format: id|name|week digest), write one short
plain-language audit note highlighting anything worth a reviewer's attention.
Respond with exactly one line per employee in the format id|note and nothing else.`

type AnnotationServiceImpl struct {
	llm llm.Client
}

func NewAnnotationService(client llm.Client) annotation.Service {
	return &AnnotationServiceImpl{llm: client}
}

// EnrichWeek implements annotation.Service.
func (s *AnnotationServiceImpl) EnrichWeek(ctx context.Context, digests []annotation.EmployeeDigest) (map[string]string, error) {
	if len(digests) == 0 {
		return map[string]string{}, nil
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\n")
	for _, d := range digests {
		fmt.Fprintf(&b, "%s|%s|%s\n", d.EmployeeID, d.EmployeeName, d.Summary)
	}

	raw, err := s.llm.Complete(ctx, b.String())
	if err != nil {
		return nil, fmt.Errorf("annotation request failed: %w", err)
	}

	valid := make(map[string]struct{}, len(digests))
	for _, d := range digests {
		valid[d.EmployeeID] = struct{}{}
	}

	return parseNotes(raw, valid), nil
}

// parseNotes extracts id|note pairs from the generator's free-text response.
// Lines that do not match the format, reference unknown employees, or carry
// an empty note are ignored.
func parseNotes(raw string, validIDs map[string]struct{}) map[string]string {
	notes := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		note := strings.TrimSpace(parts[1])
		if id == "" || note == "" {
			continue
		}
		if _, ok := validIDs[id]; !ok {
			continue
		}
		notes[id] = note
	}
	return notes
}
