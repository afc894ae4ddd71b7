// Package textenc resolves the text encoding of raw transcript bytes by
// trying an ordered list of candidate encodings until one decodes cleanly.
package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
)

// ErrUndecodable is returned when no candidate encoding decodes the content.
var ErrUndecodable = errors.New("no candidate encoding decoded the content")

// Candidate is a named encoding to try. A nil Encoding means plain UTF-8
// validation without transformation.
type Candidate struct {
	Name     string
	Encoding encoding.Encoding
}

// candidateByName maps the supported config names to candidates. x/text
// implements EUC-KR and its Code Page 949 superset with the same codec, so
// both names resolve to korean.EUCKR.
func candidateByName(name string) (Candidate, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return Candidate{Name: "utf-8"}, nil
	case "cp949":
		return Candidate{Name: "cp949", Encoding: korean.EUCKR}, nil
	case "euc-kr", "euckr":
		return Candidate{Name: "euc-kr", Encoding: korean.EUCKR}, nil
	default:
		return Candidate{}, fmt.Errorf("unsupported encoding %q", name)
	}
}

// Resolver decodes raw bytes with the first candidate that succeeds.
type Resolver struct {
	candidates []Candidate
}

// NewResolver builds a Resolver from config encoding names, in order.
func NewResolver(names []string) (*Resolver, error) {
	if len(names) == 0 {
		return nil, errors.New("at least one encoding is required")
	}

	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		c, err := candidateByName(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return &Resolver{candidates: candidates}, nil
}

// Decode returns the decoded text and the name of the encoding that decoded
// it. It fails with ErrUndecodable when every candidate rejects the bytes.
func (r *Resolver) Decode(raw []byte) (string, string, error) {
	for _, c := range r.candidates {
		text, ok := decodeWith(c, raw)
		if ok {
			return text, c.Name, nil
		}
	}

	names := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		names[i] = c.Name
	}
	return "", "", fmt.Errorf("tried %s: %w", strings.Join(names, ", "), ErrUndecodable)
}

func decodeWith(c Candidate, raw []byte) (string, bool) {
	if c.Encoding == nil {
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	}

	decoded, err := c.Encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	// The korean decoder substitutes U+FFFD for invalid sequences instead of
	// returning an error. EUC-KR cannot encode U+FFFD, so its presence in the
	// output means the input was not valid under this encoding.
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}
