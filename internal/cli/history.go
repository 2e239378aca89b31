package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/format"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/ui/style"
)

type historyArgs struct {
	Limit int
}

func history(s *State, r historyArgs) error {
	if s.History == nil {
		return errors.New("history is disabled")
	}
	if r.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", r.Limit)
	}

	entries, err := s.History.Recent(r.Limit)
	if err != nil {
		return fmt.Errorf("could not read history: %w", err)
	}

	clock, _ := s.Config.Get("display_time")
	now := time.Now()

	slices.Reverse(entries)
	for _, e := range entries {
		_, _ = s.Out.Printf("%s  %s%s\n",
			style.Muted(format.Stamp(e.Timestamp.Local(), now, clock)),
			strings.Join(input.Fields(e.Command, s.whitespace()), " "),
			outcome(e),
		)
	}
	return nil
}

func outcome(e domain.HistoryEntry) string {
	if e.Status == domain.HistoryOK {
		return ""
	}
	return "  " + style.Error(e.Message)
}
