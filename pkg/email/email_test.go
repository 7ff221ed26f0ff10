package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasked(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "typical address", input: "carol@example.com", want: "c***@example.com"},
		{name: "single letter local part", input: "a@b.pl", want: "a***@b.pl"},
		{name: "no at sign", input: "not-an-email", want: "***"},
		{name: "leading at sign", input: "@example.com", want: "***"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Masked(tt.input))
		})
	}
}

func TestDeriveNameFromEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{name: "dot separated", input: "jan.kowalski@example.com", wantFirst: "Jan", wantLast: "Kowalski"},
		{name: "underscore separated", input: "ann_smith@example.com", wantFirst: "Ann", wantLast: "Smith"},
		{name: "single part", input: "carol@example.com", wantFirst: "Carol", wantLast: "User"},
		{name: "plus suffix keeps outer parts", input: "bob+shop@example.com", wantFirst: "Bob", wantLast: "Shop"},
		{name: "empty local part", input: "@example.com", wantFirst: "User", wantLast: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := DeriveNameFromEmail(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
