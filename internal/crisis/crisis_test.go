package crisis

import "testing"

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "literal phrase",
			text: "I want to kill myself",
			want: true,
		},
		{
			name: "mixed case",
			text: "I Want To DIE",
			want: true,
		},
		{
			name: "phrase inside a longer sentence",
			text: "lately I keep thinking everyone would be better off dead without me",
			want: true,
		},
		{
			name: "standalone suicide",
			text: "suicide",
			want: true,
		},
		{
			name: "pattern with end it",
			text: "i want to end it",
			want: true,
		},
		{
			name: "going to pattern",
			text: "i am going to end it tonight",
			want: true,
		},
		{
			name: "cant go on with contraction",
			text: "I just can't go on",
			want: true,
		},
		{
			name: "hurt myself",
			text: "sometimes I hurt myself",
			want: true,
		},
		{
			name: "ordinary sadness is not crisis",
			text: "I feel really sad today",
			want: false,
		},
		{
			name: "greeting",
			text: "hello",
			want: false,
		},
		{
			name: "work complaint",
			text: "my job is exhausting and I am tired of it",
			want: false,
		},
		{
			name: "empty input",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
