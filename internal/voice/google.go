package voice

import (
	"context"
	"fmt"
	"io"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"salon-assistant-backend/config"
)

// GoogleRecognizer is a Recognizer backed by Google Cloud Speech-to-Text.
// It relies on Application Default Credentials for authentication.
type GoogleRecognizer struct {
	client       *speech.Client
	languageCode string
	sampleRate   int32
}

// NewGoogleRecognizer creates a speech client from the voice configuration.
func NewGoogleRecognizer(ctx context.Context, cfg *config.VoiceConfig) (*GoogleRecognizer, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleRecognizer{
		client:       client,
		languageCode: cfg.LanguageCode,
		sampleRate:   int32(cfg.SampleRateHertz),
	}, nil
}

// Close cleans up the speech client connection.
func (r *GoogleRecognizer) Close() {
	if r.client != nil {
		r.client.Close()
	}
}

// Recognize transcribes one captured utterance. No audio means silence; a
// response without alternatives means the utterance was unintelligible.
func (r *GoogleRecognizer) Recognize(ctx context.Context, audio io.Reader) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}
	if len(data) == 0 {
		return "", ErrSilence
	}

	resp, err := r.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_OGG_OPUS,
			SampleRateHertz: r.sampleRate,
			LanguageCode:    r.languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			sb.WriteString(result.Alternatives[0].Transcript)
		}
	}
	transcript := strings.TrimSpace(sb.String())
	if transcript == "" {
		return CouldNotUnderstand, nil
	}
	return strings.ToLower(transcript), nil
}
