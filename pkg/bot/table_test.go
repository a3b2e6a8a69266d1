package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/infinigence/octochat/pkg/matcher"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestTable_FirstMatchWins(t *testing.T) {
	table := NewTable().
		AddResponder(matcher.Word("help"), "R1").
		AddResponder(matcher.Always, "R2")

	assert.Equal(t, Responded("R1"), table.Respond("help me"))
	assert.Equal(t, Responded("R2"), table.Respond("anything else"))
}

func TestTable_OrderIsPriority(t *testing.T) {
	table := NewTable().
		AddResponder(matcher.Word("write").And("essay"), "I don't like essays.").
		AddResponder(matcher.Word("write"), "I'm illiterate.")

	assert.Equal(t, Responded("I don't like essays."), table.Respond("write an essay"))
	assert.Equal(t, Responded("I'm illiterate."), table.Respond("can you write?"))

	reversed := NewTable().
		AddResponder(matcher.Word("write"), "I'm illiterate.").
		AddResponder(matcher.Word("write").And("essay"), "I don't like essays.")
	assert.Equal(t, Responded("I'm illiterate."), reversed.Respond("write an essay"))
}

func TestTable_ExitPrecedence(t *testing.T) {
	table := NewTable().AddResponder(matcher.Word("please"), "polite")

	assert.Equal(t, Exit(), table.Respond("please exit now"))
	assert.Equal(t, Exit(), table.Respond("EXIT"))
	// substring check is intentionally broad
	assert.Equal(t, Exit(), table.Respond("please find the exit sign"))
	assert.Equal(t, Responded("polite"), table.Respond("please"))
}

func TestTable_ExitKeywordOption(t *testing.T) {
	table := NewTable(WithExitKeyword("BYE")).AddResponder(matcher.Word("exit"), "no way out")
	assert.Equal(t, Exit(), table.Respond("ok bye"))
	assert.Equal(t, Responded("no way out"), table.Respond("exit"))
	assert.Equal(t, "bye", table.ExitKeyword())

	noExit := NewTable(WithExitKeyword(""))
	assert.Equal(t, NoMatch(), noExit.Respond("exit"))
}

func TestTable_NoMatch(t *testing.T) {
	table := NewTable().
		AddResponder(matcher.Word("help"), "helping").
		AddResponder(matcher.Word("class"), "CS")

	assert.Equal(t, NoMatch(), table.Respond("zzyzzy"))
	assert.Equal(t, NoMatch(), table.Respond(""))
	assert.Equal(t, NoMatch(), NewTable().Respond("hello"))
}

func TestTable_DynamicResponder(t *testing.T) {
	answer := ResponderFunc(func(text string) (string, bool) {
		if strings.Contains(text, "answer") {
			return "42", true
		}
		return "", false
	})
	table := NewTable().AddDynamicResponder(answer)

	assert.Equal(t, Responded("42"), table.Respond("what is the answer"))
	assert.Equal(t, NoMatch(), table.Respond("what is the question"))
}

func TestTable_DynamicRuleKeepsOrder(t *testing.T) {
	calls := 0
	counting := ResponderFunc(func(text string) (string, bool) {
		calls++
		return "dynamic", true
	})
	table := NewTable().
		AddResponder(matcher.Word("static"), "static").
		AddDynamicResponder(counting).
		AddResponder(matcher.Always, "unreachable")

	assert.Equal(t, Responded("static"), table.Respond("static"))
	assert.Equal(t, 0, calls)
	assert.Equal(t, Responded("dynamic"), table.Respond("other"))
	assert.Equal(t, 1, calls)
}

func TestTable_Rules(t *testing.T) {
	table := NewTable().
		AddRule(&StaticRule{Name: "greet", Matcher: matcher.Word("hi"), Response: "hello"}).
		AddDynamicResponder(NewTimeResponder(matcher.Word("time"), clockwork.NewFakeClock()))

	assert.Equal(t, 2, table.Len())
	rules := table.Rules()
	assert.Equal(t, "greet", rules[0].RuleName())
	assert.Equal(t, "dynamic", rules[1].RuleName())

	rules[0] = nil
	assert.NotNil(t, table.Rules()[0])
}

func TestStaticRule_NameFallsBackToMatcher(t *testing.T) {
	r := &StaticRule{Matcher: matcher.Word("x"), Response: "y"}
	assert.Equal(t, "word(x)", r.RuleName())
}

func TestTimeResponder(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	r := NewTimeResponder(matcher.Word("time").Or("date"), clockwork.NewFakeClockAt(at))

	resp, ok := r.Respond("what time is it")
	assert.True(t, ok)
	assert.Equal(t, "It's currently Sat, 09 Mar 2024 14:30:00 +0000", resp)

	_, ok = r.Respond("hello")
	assert.False(t, ok)

	r.Location = time.FixedZone("X", 2*60*60)
	r.Layout = time.Kitchen
	r.Template = "now: %s"
	resp, ok = r.Respond("date?")
	assert.True(t, ok)
	assert.Equal(t, "now: 4:30PM", resp)
}

func TestTimeResponder_InTable(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	table := NewTable().
		AddDynamicResponder(NewTimeResponder(matcher.Word("time"), clockwork.NewFakeClockAt(at))).
		AddResponder(matcher.Word("huh").Or("what"), "Didn't you hear?")

	assert.Equal(t, Responded("It's currently Mon, 01 Jan 2024 00:00:00 +0000"), table.Respond("what time is it"))
	assert.Equal(t, Responded("Didn't you hear?"), table.Respond("what?"))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "exit", Exit().String())
	assert.Equal(t, "no_match", NoMatch().String())
	assert.Equal(t, "responded: hi", Responded("hi").String())
}
