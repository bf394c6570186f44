package util

import "testing"

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "not json",
			body: "<p>plain html</p>",
			want: "",
		},
		{
			name: "flat blocks",
			body: `{"blocks":[{"text":"첫 문단"},{"text":"둘째 문단"}]}`,
			want: "첫 문단 둘째 문단",
		},
		{
			name: "nested content",
			body: `{"content":[{"content":[{"text":"deep"}]},{"text":"shallow"}]}`,
			want: "deep shallow",
		},
		{
			name: "children key",
			body: `{"children":[{"text":"a"},{"children":[{"text":"b"}]}]}`,
			want: "a b",
		},
		{
			name: "no text fields",
			body: `{"blocks":[{"type":"image","url":"x.png"}]}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlainText(tt.body); got != tt.want {
				t.Errorf("ExtractPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrSliceToUint64Slice(t *testing.T) {
	got, err := StrSliceToUint64Slice([]string{"1", "42", "9007199254740993"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint64{1, 42, 9007199254740993}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := StrSliceToUint64Slice([]string{"1", "abc"}); err == nil {
		t.Error("expected error for non-numeric input")
	}

	empty, err := StrSliceToUint64Slice(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("nil input: got %v, %v", empty, err)
	}
}
