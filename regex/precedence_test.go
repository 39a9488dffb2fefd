package regex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thompson/regex/scanner"
	"github.com/npillmayer/thompson/regex/scanner/lexmach"
	"github.com/npillmayer/thompson/regex/scanner/plexer"
)

// Without precedence, operators are applied in stack order. For a.b|c this
// means '|' is applied before '.', reading the expression as a.(b|c).
func TestStackOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.regex")
	defer teardown()
	//
	expected := `q1: {a: {q2}}
q2: {ε: {q7}}
q3: {b: {q4}}
q4: {}
q5: {c: {q6}}
q6: {}
q7: {ε: {q3, q5}}
Start state: q1
Final states: {q4, q6}
`
	nfa := MustConvert("a.b|c")
	if nfa.String() != expected {
		t.Errorf("expected automaton\n%s\nhave\n%s", expected, nfa)
	}
	checkLanguage(t, nfa, "a.b|c", []string{"ab", "ac"}, []string{"c", "b", "abc"})
}

func TestStackOrderStar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.regex")
	defer teardown()
	//
	// '*' is pushed before '.', thus applied to the concatenation
	checkLanguage(t, MustConvert("a*.b"), "a*.b",
		[]string{"", "ab", "abab"}, []string{"b", "aab", "a"})
	checkLanguage(t, MustConvert("a.b*"), "a.b*",
		[]string{"a", "ab", "abbb"}, []string{"", "b", "aab"})
}

func TestPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.regex")
	defer teardown()
	//
	for _, test := range []struct {
		regex   string
		in, out []string
	}{
		{regex: "a.b|c", in: []string{"ab", "c"}, out: []string{"ac", "b", "abc"}},
		{regex: "a|b.c", in: []string{"a", "bc"}, out: []string{"ac", "b", "abc"}},
		{regex: "a*.b", in: []string{"b", "ab", "aaab"}, out: []string{"", "abab", "a"}},
		{regex: "a.b*", in: []string{"a", "ab", "abbb"}, out: []string{"", "b", "abab"}},
		{regex: "a.b.c|d", in: []string{"abc", "d"}, out: []string{"abd", "ab", "cd"}},
		{regex: "(a|b).c*", in: []string{"a", "bc", "acc"}, out: []string{"", "c", "ab"}},
		{regex: "a**", in: []string{"", "a", "aaa"}, out: []string{"b"}},
	} {
		nfa, err := Convert(test.regex, Precedence(true))
		if err != nil {
			t.Errorf("%q: %v", test.regex, err)
			continue
		}
		if err := nfa.Validate(); err != nil {
			t.Errorf("%q: %v", test.regex, err)
		}
		checkLanguage(t, nfa, test.regex, test.in, test.out)
	}
}

func TestPrecedenceMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.regex")
	defer teardown()
	//
	for _, input := range []string{"a.", "|a", "a.|b", "(a", "a)"} {
		if _, err := Convert(input, Precedence(true)); err == nil {
			t.Errorf("expected %q to be malformed", input)
		}
	}
}

func TestTokenizers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.regex")
	defer teardown()
	//
	LM, err := lexmach.NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	factories := map[string]TokenizerFactory{
		"lexmachine": func(regex string) (scanner.Tokenizer, error) {
			return LM.Scanner(regex)
		},
		"participle": func(regex string) (scanner.Tokenizer, error) {
			return plexer.Tokenizer(regex)
		},
	}
	for name, factory := range factories {
		for _, input := range []string{"a", "(a|a.b)*", "x . y", "ä|b"} {
			nfa1, err := Convert(input, WithTokenizer(factory))
			if err != nil {
				t.Errorf("%s: %q: %v", name, input, err)
				continue
			}
			nfa2 := MustConvert(input)
			if nfa1.String() != nfa2.String() {
				t.Errorf("%s: %q: expected tokenizers to result in the same automaton:\n%s\n%s",
					name, input, nfa1, nfa2)
			}
		}
		if _, err := Convert("a+b", WithTokenizer(factory), Strict(true)); err == nil {
			t.Errorf("%s: expected '+' to be rejected in strict mode", name)
		}
	}
}

func TestNameAllocator(t *testing.T) {
	na := NewNameAllocator("q")
	if n := na.Next(); n != "q1" {
		t.Errorf("expected first name to be q1, is %s", n)
	}
	na.Next()
	if n := na.Next(); n != "q3" || na.Count() != 3 {
		t.Errorf("expected third name to be q3, is %s", n)
	}
}
