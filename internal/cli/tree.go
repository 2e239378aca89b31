package cli

import (
	"github.com/footprint-tools/roped/internal/binder"
	"github.com/footprint-tools/roped/internal/dispatchers"
)

// BuildTree returns the root route table of the demo console.
func BuildTree() *dispatchers.Table[State] {
	var root *dispatchers.Table[State]

	meta := dispatchers.MustTable(
		dispatchers.Name[State]("q", binder.MustStrand(quit)).
			Describe("Leave the console"),
		dispatchers.Name[State]("quit", binder.MustStrand(quit)).
			Describe("Leave the console"),
		dispatchers.Name[State]("clear", binder.MustStrand(clearCounters)).
			Describe("Reset every counter"),
	)

	config := dispatchers.MustTable(
		dispatchers.Name[State]("get", binder.MustStrand(configGet,
			binder.Positional("key", binder.String, func(r *configKeyArgs) *string { return &r.Key }),
		)).Describe("Print a configuration value"),
		dispatchers.Name[State]("set", binder.MustStrand(configSet,
			binder.Positional("key", binder.String, func(r *configSetArgs) *string { return &r.Key }),
			binder.Trail("value", binder.Text, func(r *configSetArgs) *string { return &r.Value }),
		)).Describe("Store a configuration value"),
		dispatchers.Name[State]("unset", binder.MustStrand(configUnset,
			binder.Positional("key", binder.String, func(r *configKeyArgs) *string { return &r.Key }),
		)).Describe("Restore a configuration default"),
		dispatchers.Name[State]("list", binder.MustStrand(configList)).
			Describe("Print the configuration"),
	)

	help := binder.MustStrand(func(s *State, _ struct{}) error {
		return showHelp(s, root)
	})

	root = dispatchers.MustTable(
		dispatchers.Prefix[State](":", meta),
		dispatchers.Prefix[State]("$", binder.MustStrand(show,
			binder.Positional("name", binder.String, func(r *showArgs) *string { return &r.Name }),
		)).Describe("Print one counter"),
		dispatchers.Name[State]("add", binder.MustStrand(add,
			binder.Positional("name", binder.String, func(r *addArgs) *string { return &r.Name }),
			binder.Defaulted("amount", binder.Int, 1, func(r *addArgs) *int { return &r.Amount }),
		)).Describe("Add to a counter, creating it if needed"),
		dispatchers.Name[State]("set", binder.MustStrand(set,
			binder.Positional("name", binder.String, func(r *setArgs) *string { return &r.Name }),
			binder.Positional("value", binder.Int, func(r *setArgs) *int { return &r.Value }),
			binder.Trigger("force", func(r *setArgs) *bool { return &r.Force }),
			binder.Value("note", binder.String, func(r *setArgs) *binder.Optional[string] { return &r.Note }),
		)).Describe("Overwrite an existing counter"),
		dispatchers.Name[State]("scope", binder.MustStrand(scope,
			binder.Positional("a", binder.Int, func(r *scopeArgs) *int { return &r.A }),
			binder.Positional("b", binder.String, func(r *scopeArgs) *string { return &r.B }),
			binder.Trigger("flag", func(r *scopeArgs) *bool { return &r.Flag }),
		)).Describe("Echo two typed arguments and a flag"),
		dispatchers.Name[State]("note", binder.MustStrand(note,
			binder.Trail("text", binder.Text, func(r *noteArgs) *string { return &r.Text }),
		)).Describe("Keep a free-text note"),
		dispatchers.Name[State]("list", binder.MustStrand(list)).
			Describe("Print every counter and note"),
		dispatchers.Name[State]("config", config),
		dispatchers.Name[State]("history", binder.MustStrand(history,
			binder.Defaulted("limit", binder.Int, 10, func(r *historyArgs) *int { return &r.Limit }),
		)).Describe("Print recently dispatched commands"),
		dispatchers.Name[State]("help", help).
			Describe("Show this help"),
		dispatchers.Fallback[State](dispatchers.HandlerFunc[State](echo)).
			Describe("Echo anything else"),
	)

	return root
}

// Commands returns every routed command path, for completion.
func Commands() []string {
	return dispatchers.CollectCommands[State](BuildTree(), "")
}
