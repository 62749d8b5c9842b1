// Package tokenizer provides prompt token estimates for generateContent
// payloads. Estimates feed the request log line only; they never affect the
// proxied response.
package tokenizer

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer estimates prompt tokens for a forwarded payload.
type Tokenizer interface {
	// CountTokens counts tokens in a text string.
	CountTokens(text string) (int, error)

	// CountPayload estimates prompt tokens for a full generateContent body.
	CountPayload(payload []byte) (int, error)
}

// encodingName is the BPE used for estimates. The upstream's own vocabulary
// is not published, so counts are approximate.
const encodingName = "cl100k_base"

// TiktokenTokenizer implements Tokenizer using tiktoken-go.
type TiktokenTokenizer struct {
	mu  sync.RWMutex
	enc *tiktoken.Tiktoken
}

// New creates a new TiktokenTokenizer. The encoding is loaded lazily on
// first use.
func New() *TiktokenTokenizer {
	return &TiktokenTokenizer{}
}

// getEncoding returns the tiktoken encoding, loading it once.
func (t *TiktokenTokenizer) getEncoding() (*tiktoken.Tiktoken, error) {
	t.mu.RLock()
	enc := t.enc
	t.mu.RUnlock()
	if enc != nil {
		return enc, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Double-check after acquiring write lock
	if t.enc != nil {
		return t.enc, nil
	}

	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	t.enc = enc
	return enc, nil
}

// CountTokens counts tokens in a text string.
func (t *TiktokenTokenizer) CountTokens(text string) (int, error) {
	enc, err := t.getEncoding()
	if err != nil {
		return 0, err
	}
	tokens := enc.Encode(text, nil, nil)
	return len(tokens), nil
}

// CountPayload estimates prompt tokens for a full generateContent body by
// counting every text part it carries.
func (t *TiktokenTokenizer) CountPayload(payload []byte) (int, error) {
	total := 0
	for _, text := range ExtractTexts(payload) {
		n, err := t.CountTokens(text)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
