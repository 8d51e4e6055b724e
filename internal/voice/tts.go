package voice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"salon-assistant-backend/config"
)

const defaultTTSEndpoint = "https://translate.google.com/translate_tts"

// HTTPSpeaker synthesizes speech through an HTTP text-to-speech endpoint and
// streams the resulting MP3 into the injected sink (a player pipe, a file,
// or a websocket writer).
type HTTPSpeaker struct {
	client   *http.Client
	endpoint string
	lang     string
	out      io.Writer
}

// NewHTTPSpeaker creates a Speaker writing synthesized audio to out.
func NewHTTPSpeaker(cfg *config.VoiceConfig, out io.Writer) *HTTPSpeaker {
	endpoint := cfg.TTSEndpoint
	if endpoint == "" {
		endpoint = defaultTTSEndpoint
	}
	return &HTTPSpeaker{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: endpoint,
		lang:     cfg.TTSLanguage,
		out:      out,
	}
}

// Speak fetches synthesized audio for the text and writes it to the sink.
func (s *HTTPSpeaker) Speak(ctx context.Context, text string) error {
	query := url.Values{
		"ie":     {"UTF-8"},
		"client": {"tw-ob"},
		"tl":     {s.lang},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts returned non-200 status code: %d", resp.StatusCode)
	}

	if _, err := io.Copy(s.out, resp.Body); err != nil {
		return fmt.Errorf("failed to write synthesized audio: %w", err)
	}
	return nil
}
