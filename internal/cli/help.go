package cli

import "github.com/footprint-tools/roped/internal/dispatchers"

func showHelp(s *State, root *dispatchers.Table[State]) error {
	entries := dispatchers.HelpEntries[State](root, "")
	s.Out.Pager(dispatchers.RenderHelp("roped: tally console", entries))
	return nil
}
