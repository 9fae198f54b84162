package filter

import (
	"reflect"
	"testing"
)

func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  node
	}{
		{
			"single predicate",
			"p1",
			predicateNode{text: "p1"},
		},
		{
			"and binds tighter than or",
			"a & b | c",
			orNode{
				left:  andNode{left: predicateNode{text: "a"}, right: predicateNode{text: "b"}},
				right: predicateNode{text: "c"},
			},
		},
		{
			"and binds tighter than or, reversed",
			"a | b & c",
			orNode{
				left:  predicateNode{text: "a"},
				right: andNode{left: predicateNode{text: "b"}, right: predicateNode{text: "c"}},
			},
		},
		{
			"not binds tightest",
			"!a & b",
			andNode{left: notNode{inner: predicateNode{text: "a"}}, right: predicateNode{text: "b"}},
		},
		{
			"group overrides precedence",
			"(a | b) & c",
			andNode{
				left:  groupNode{inner: orNode{left: predicateNode{text: "a"}, right: predicateNode{text: "b"}}},
				right: predicateNode{text: "c"},
			},
		},
		{
			"negated group",
			"!(a | b)",
			notNode{inner: groupNode{inner: orNode{left: predicateNode{text: "a"}, right: predicateNode{text: "b"}}}},
		},
		{
			"nested groups",
			"((a))",
			groupNode{inner: groupNode{inner: predicateNode{text: "a"}}},
		},
		{
			"double negation stays one atomic condition",
			"!!x",
			notNode{inner: predicateNode{text: "!x"}},
		},
		{
			"juxtaposed groups conjoin",
			"(a) (b)",
			andNode{
				left:  groupNode{inner: predicateNode{text: "a"}},
				right: groupNode{inner: predicateNode{text: "b"}},
			},
		},
		{
			"dangling and gets empty operand",
			"a &",
			andNode{left: predicateNode{text: "a"}, right: predicateNode{text: ""}},
		},
		{
			"leading or gets empty operand",
			"| b",
			orNode{left: predicateNode{text: ""}, right: predicateNode{text: "b"}},
		},
		{
			"unmatched paren becomes predicate text",
			"(a",
			predicateNode{text: "(a"},
		},
		{
			"empty group",
			"()",
			groupNode{inner: predicateNode{text: ""}},
		},
		{
			"left associative or chain",
			"a | b | c",
			orNode{
				left:  orNode{left: predicateNode{text: "a"}, right: predicateNode{text: "b"}},
				right: predicateNode{text: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parse(%q) = %#v, want %#v", tt.query, got, tt.want)
			}
		})
	}
}

func TestParse_NeverPanicsOnGarbage(t *testing.T) {
	queries := []string{
		"", "(", ")", "((", "))", ")(", "&", "|", "!", "&&&", "|||",
		"!!!", "(a(b(c", "a)b)c)", "!&|()", "((a|b&!c)))((",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			if got := parse(q); got == nil {
				t.Errorf("parse(%q) = nil", q)
			}
		})
	}
}
