package cli

import (
	"testing"
)

func TestGreetRejectsArgs(t *testing.T) {
	isolateHome(t)
	if _, err := executeCommand("greet", "simon"); err == nil {
		t.Fatal("expected error for positional args")
	}
}

func TestAddRequiresTwoArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"add"}},
		{"one arg", []string{"add", "1"}},
		{"three args", []string{"add", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			if _, err := executeCommand(tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAddRejectsNonNumeric(t *testing.T) {
	isolateHome(t)
	if _, err := executeCommand("add", "1", "abc", "--server", "http://127.0.0.1:1"); err == nil {
		t.Fatal("expected error for non-numeric operand")
	}
}

func TestServeRejectsArgs(t *testing.T) {
	isolateHome(t)
	if _, err := executeCommand("serve", "extra"); err == nil {
		t.Fatal("expected error for extra args")
	}
}

func TestKataArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"largest no args", []string{"kata", "largest"}},
		{"squares no args", []string{"kata", "squares"}},
		{"fizzbuzz no args", []string{"kata", "fizzbuzz"}},
		{"fizzbuzz zero", []string{"kata", "fizzbuzz", "0"}},
		{"tournament bad shape", []string{"kata", "tournament", "a,b"}},
		{"tournament bad result", []string{"kata", "tournament", "a,b,x"}},
		{"subsequence empty", []string{"kata", "subsequence"}},
		{"change zero coin", []string{"kata", "change", "0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			if _, err := executeCommand(tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
