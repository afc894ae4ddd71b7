package textenc

import (
	"errors"
	"testing"
)

// "한글" encoded as EUC-KR. Not valid UTF-8.
var euckrHangul = []byte{0xC7, 0xD1, 0xB1, 0xDB}

func newDefaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver([]string{"utf-8", "cp949", "euc-kr"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		raw          []byte
		wantText     string
		wantEncoding string
	}{
		{
			name:         "plain ascii resolves as utf-8",
			raw:          []byte("meeting notes"),
			wantText:     "meeting notes",
			wantEncoding: "utf-8",
		},
		{
			name:         "utf-8 hangul",
			raw:          []byte("회의 녹취록"),
			wantText:     "회의 녹취록",
			wantEncoding: "utf-8",
		},
		{
			name:         "euc-kr hangul falls through to cp949",
			raw:          euckrHangul,
			wantText:     "한글",
			wantEncoding: "cp949",
		},
		{
			name:         "empty file resolves as utf-8",
			raw:          nil,
			wantText:     "",
			wantEncoding: "utf-8",
		},
	}

	r := newDefaultResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := r.Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if enc != tt.wantEncoding {
				t.Errorf("encoding = %q, want %q", enc, tt.wantEncoding)
			}
		})
	}
}

func TestDecodeUndecodable(t *testing.T) {
	r := newDefaultResolver(t)

	// 0xFF is not a valid lead byte in UTF-8 or EUC-KR/CP949.
	_, _, err := r.Decode([]byte{0xFF, 0xFF, 0xFF})
	if err == nil {
		t.Fatal("Decode() should fail for bytes invalid under all encodings")
	}
	if !errors.Is(err, ErrUndecodable) {
		t.Errorf("error = %v, want ErrUndecodable", err)
	}
}

func TestDecodeCandidateOrder(t *testing.T) {
	// With only euc-kr configured, ASCII still decodes but reports euc-kr.
	r, err := NewResolver([]string{"euc-kr"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	_, enc, err := r.Decode([]byte("plain"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if enc != "euc-kr" {
		t.Errorf("encoding = %q, want euc-kr", enc)
	}
}

func TestNewResolverRejectsUnknownEncoding(t *testing.T) {
	if _, err := NewResolver([]string{"utf-8", "shift-jis"}); err == nil {
		t.Error("NewResolver() should reject unsupported encoding names")
	}
}

func TestNewResolverRequiresCandidates(t *testing.T) {
	if _, err := NewResolver(nil); err == nil {
		t.Error("NewResolver() should require at least one encoding")
	}
}
