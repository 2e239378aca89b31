package binder

import (
	"errors"
	"testing"
	"time"

	"github.com/footprint-tools/roped/internal/dispatchers"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/usage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type session struct {
	ran []any
}

func remember[R any](s *session, rec R) error {
	s.ran = append(s.ran, rec)
	return nil
}

func request(line string) dispatchers.Request {
	return dispatchers.NewRequest(input.New(line), dispatchers.DefaultEnv())
}

type person struct {
	Age   int
	Name  string
	Admin bool
}

func personStrand() *Strand[session, person] {
	return MustStrand(remember[person],
		Positional("age", Int, func(p *person) *int { return &p.Age }),
		Positional("name", String, func(p *person) *string { return &p.Name }),
		Positional("admin", Bool, func(p *person) *bool { return &p.Admin }),
	)
}

func TestBind_Positionals(t *testing.T) {
	rec, index, err := personStrand().Bind(request("21 bob true"))
	require.NoError(t, err)
	require.Equal(t, person{Age: 21, Name: "bob", Admin: true}, rec)
	require.Equal(t, 4, index)
}

func TestBind_PositionalErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		kind  usage.ErrorKind
		msg   string
		index int
	}{
		{name: "empty", line: "", kind: usage.ErrExpectedArg, msg: "missing argument (1)", index: 1},
		{name: "only whitespace", line: " \t ", kind: usage.ErrExpectedArg, msg: "missing argument (1)", index: 1},
		{name: "second missing", line: "21", kind: usage.ErrExpectedArg, msg: "missing argument (2)", index: 2},
		{name: "bad int", line: "old bob true", kind: usage.ErrParseArg, msg: "unable to cast argument 'old' (1)", index: 1},
		{name: "bad bool", line: "21 bob maybe", kind: usage.ErrParseArg, msg: "unable to cast argument 'maybe' (3)", index: 3},
		{name: "extra", line: "21 bob true extra", kind: usage.ErrUnexpected, msg: "unexpected argument 'extra' (4)", index: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, index, err := personStrand().Bind(request(tt.line))
			require.Error(t, err)
			require.Equal(t, tt.kind, usage.KindOf(err))
			require.Equal(t, tt.msg, err.Error())
			require.Equal(t, tt.index, index)
		})
	}
}

func TestBind_SinglePositionalEmpty(t *testing.T) {
	type one struct{ N int }
	s := MustStrand(remember[one], Positional("n", Int, func(o *one) *int { return &o.N }))

	_, _, err := s.Bind(request(""))
	require.Equal(t, usage.ErrExpectedArg, usage.KindOf(err))
	require.Equal(t, "missing argument (1)", err.Error())
}

type flagged struct {
	Num  int
	F1   bool
	F2   Optional[int]
	Note Optional[string]
}

func flaggedStrand() *Strand[session, flagged] {
	return MustStrand(remember[flagged],
		Positional("num", Int, func(f *flagged) *int { return &f.Num }),
		Trigger("f1", func(f *flagged) *bool { return &f.F1 }),
		Value("f2", Int, func(f *flagged) *Optional[int] { return &f.F2 }),
		Value("note", String, func(f *flagged) *Optional[string] { return &f.Note }),
	)
}

func TestBind_FlagOrderIndependence(t *testing.T) {
	a, ia, err := flaggedStrand().Bind(request("5 --f1 --f2 9"))
	require.NoError(t, err)

	b, ib, err := flaggedStrand().Bind(request("5 --f2 9 --f1"))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, ia, ib)
	require.Equal(t, flagged{Num: 5, F1: true, F2: Optional[int]{Value: 9, Set: true}}, a)
	require.Equal(t, 5, ia)
}

func TestTrigger_OnlyMarksPresence(t *testing.T) {
	f := Trigger("f1", func(f *flagged) *bool { return &f.F1 })
	require.Nil(t, f.set)
	require.NotNil(t, f.setTrue)

	var rec flagged
	f.setTrue(&rec)
	require.True(t, rec.F1)
}

func TestBind_FlagsAbsent(t *testing.T) {
	rec, index, err := flaggedStrand().Bind(request("5"))
	require.NoError(t, err)
	require.False(t, rec.F1)
	_, set := rec.F2.Get()
	require.False(t, set)
	require.Equal(t, 7, rec.F2.Or(7))
	require.Equal(t, 2, index)
}

func TestBind_ShortMarkers(t *testing.T) {
	rec, _, err := flaggedStrand().Bind(request("5 -n hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", rec.Note.Value)

	// f1 and f2 share their first character, so neither has a short form.
	_, _, err = flaggedStrand().Bind(request("5 -f"))
	require.Equal(t, usage.ErrInvalidFlag, usage.KindOf(err))
}

func TestBind_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind usage.ErrorKind
		msg  string
	}{
		{name: "unknown flag", line: "5 --nope", kind: usage.ErrInvalidFlag, msg: "invalid flag '--nope' (2)"},
		{name: "missing value", line: "5 --f1 --f2", kind: usage.ErrExpectedFlag, msg: "missing value for flag '--f2' (4)"},
		{name: "bad value", line: "5 --f2 nine", kind: usage.ErrParseArg, msg: "unable to cast argument 'nine' (3)"},
		{name: "repeated", line: "5 --f1 --f1", kind: usage.ErrDuplicateFlag, msg: "flag '--f1' given more than once (3)"},
		{name: "repeated by short form", line: "5 --note a -n b", kind: usage.ErrDuplicateFlag, msg: "flag '-n' given more than once (4)"},
		{name: "stray token", line: "5 --f1 stray", kind: usage.ErrUnexpected, msg: "unexpected argument 'stray' (3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := flaggedStrand().Bind(request(tt.line))
			require.Equal(t, tt.kind, usage.KindOf(err))
			require.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestBind_NegativeFlagValue(t *testing.T) {
	rec, _, err := flaggedStrand().Bind(request("-5 --f2 -9"))
	require.NoError(t, err)
	require.Equal(t, -5, rec.Num)
	require.Equal(t, -9, rec.F2.Value)
}

type amount struct {
	Name   string
	Amount int
	Extra  int
}

func amountStrand() *Strand[session, amount] {
	return MustStrand(remember[amount],
		Positional("name", String, func(a *amount) *string { return &a.Name }),
		Defaulted("amount", Int, 1, func(a *amount) *int { return &a.Amount }),
		Defaulted("extra", Int, 0, func(a *amount) *int { return &a.Extra }),
	)
}

func TestBind_Defaults(t *testing.T) {
	rec, index, err := amountStrand().Bind(request("apples"))
	require.NoError(t, err)
	require.Equal(t, amount{Name: "apples", Amount: 1}, rec)
	require.Equal(t, 4, index)

	rec, index, err = amountStrand().Bind(request("apples 3 4"))
	require.NoError(t, err)
	require.Equal(t, amount{Name: "apples", Amount: 3, Extra: 4}, rec)
	require.Equal(t, 4, index)
}

func TestBind_DefaultsWithoutAdvancing(t *testing.T) {
	env := dispatchers.DefaultEnv()
	env.AdvanceOnDefault = false

	_, index, err := amountStrand().Bind(dispatchers.NewRequest(input.New("apples"), env))
	require.NoError(t, err)
	require.Equal(t, 2, index)

	_, index, err = amountStrand().Bind(dispatchers.NewRequest(input.New("apples 3"), env))
	require.NoError(t, err)
	require.Equal(t, 3, index)
}

func TestBind_DefaultedStillParses(t *testing.T) {
	_, _, err := amountStrand().Bind(request("apples many"))
	require.Equal(t, "unable to cast argument 'many' (2)", err.Error())
}

type note struct {
	Tag  string
	Text string
}

func noteStrand() *Strand[session, note] {
	return MustStrand(remember[note],
		Positional("tag", String, func(n *note) *string { return &n.Tag }),
		Trail("text", Text, func(n *note) *string { return &n.Text }),
	)
}

func TestBind_Trail(t *testing.T) {
	tests := []struct {
		line string
		want note
	}{
		{line: "todo buy  milk --now", want: note{Tag: "todo", Text: "buy  milk --now"}},
		{line: "todo", want: note{Tag: "todo", Text: ""}},
		{line: "  todo   spaced out  ", want: note{Tag: "todo", Text: "spaced out"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rec, index, err := noteStrand().Bind(request(tt.line))
			require.NoError(t, err)
			require.Equal(t, tt.want, rec)
			require.Equal(t, 2, index)
		})
	}
}

func TestBind_NoFields(t *testing.T) {
	s := MustStrand(remember[struct{}])

	_, index, err := s.Bind(request(""))
	require.NoError(t, err)
	require.Equal(t, 1, index)

	_, _, err = s.Bind(request("anything"))
	require.Equal(t, "unexpected argument 'anything' (1)", err.Error())
}

func TestBind_StartIndex(t *testing.T) {
	req := request("21 bob true")
	req.Index = 3

	_, index, err := personStrand().Bind(req)
	require.NoError(t, err)
	require.Equal(t, 6, index)
}

func TestRun_InvokesActionOnce(t *testing.T) {
	state := &session{}
	require.NoError(t, personStrand().Run(state, request("21 bob true")))
	require.Equal(t, []any{person{Age: 21, Name: "bob", Admin: true}}, state.ran)
}

func TestRun_BindFailureSkipsAction(t *testing.T) {
	state := &session{}
	err := personStrand().Run(state, request("21 bob"))
	require.Error(t, err)
	require.Empty(t, state.ran)
}

func TestRun_ActionFailureIsUserAction(t *testing.T) {
	boom := errors.New("no such counter")
	s := MustStrand(func(*session, struct{}) error { return boom })

	err := s.Run(&session{}, request(""))
	require.Equal(t, usage.ErrUserAction, usage.KindOf(err))
	require.ErrorIs(t, err, boom)
}

func TestNewStrand_Invalid(t *testing.T) {
	target := func(p *person) *int { return &p.Age }
	flag := func(p *person) *bool { return &p.Admin }
	text := func(p *person) *string { return &p.Name }

	tests := []struct {
		name   string
		fields []Field[person]
	}{
		{name: "duplicate name", fields: []Field[person]{Positional("a", Int, target), Positional("a", Int, target)}},
		{name: "empty name", fields: []Field[person]{Positional("", Int, target)}},
		{name: "name with space", fields: []Field[person]{Positional("a b", Int, target)}},
		{name: "trail not last", fields: []Field[person]{Trail("t", Text, text), Trail("u", Text, text)}},
		{name: "flag with default", fields: []Field[person]{Defaulted("d", Int, 1, target), Trigger("f", flag)}},
		{name: "trail with flag", fields: []Field[person]{Trigger("f", flag), Trail("t", Text, text)}},
		{name: "positional after default", fields: []Field[person]{Defaulted("d", Int, 1, target), Positional("p", Int, target)}},
		{name: "flag name with dash", fields: []Field[person]{Trigger("-f", flag)}},
		{name: "zero field", fields: []Field[person]{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStrand(remember[person], tt.fields...)
			require.ErrorIs(t, err, ErrInvalidStrand)
		})
	}

	_, err := NewStrand[session, person](nil)
	require.ErrorIs(t, err, ErrInvalidStrand)
}

func TestMustStrand_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustStrand(remember[person], Trigger("f", func(p *person) *bool { return &p.Admin }), Positional("p", Int, func(p *person) *int { return &p.Age }))
	})
}

func TestUsage(t *testing.T) {
	require.Equal(t, "<age> <name> <admin>", personStrand().Usage())
	require.Equal(t, "<num> [--f1] [--f2 <f2>] [--note <note>]", flaggedStrand().Usage())
	require.Equal(t, "<name> [amount=1] [extra=0]", amountStrand().Usage())
	require.Equal(t, "<tag> [text...]", noteStrand().Usage())
}

func TestParsers(t *testing.T) {
	n64, err := Int64.Parse("-9000000000")
	require.NoError(t, err)
	require.Equal(t, int64(-9000000000), n64)

	_, err = Uint.Parse("-1")
	require.Error(t, err)

	f, err := Float.Parse("2.5")
	require.NoError(t, err)
	require.InDelta(t, 2.5, f, 1e-9)

	d, err := Duration.Parse("1m30s")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)

	id := uuid.New()
	parsed, err := UUID.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = UUID.Parse("not-a-uuid")
	require.Error(t, err)

	color := OneOf("red", "green")
	v, err := color.Parse("green")
	require.NoError(t, err)
	require.Equal(t, "green", v)
	_, err = color.Parse("blue")
	require.Error(t, err)

	empty, err := Text.Parse("")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestIsMarker(t *testing.T) {
	tests := map[string]bool{
		"--force": true,
		"-f":      true,
		"--":      false,
		"-":       false,
		"-5":      false,
		"-.5":     false,
		"word":    false,
	}
	for token, want := range tests {
		require.Equal(t, want, isMarker(token), token)
	}
}
