package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"salon-assistant-backend/config"
	"salon-assistant-backend/internal/assistant"
	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/db"
	"salon-assistant-backend/internal/knowledge"
	"salon-assistant-backend/internal/store"
	"salon-assistant-backend/internal/voice"
)

// salonvoice runs the spoken conversation against the same backing store as
// the HTTP daemon. Each line on stdin names an OGG Opus file holding one
// captured utterance; end of input is treated as the caller hanging up.
// Synthesized replies are appended to the -out file.
func main() {
	logger := log.New(os.Stdout, "salon-voice ", log.LstdFlags)

	outPath := flag.String("out", "replies.mp3", "file receiving synthesized replies")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	appStore := store.NewGormStore(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	embedder := knowledge.NewOpenAIEmbedder(&cfg.AI)
	index := knowledge.NewIndex(embedder)
	if snippets, err := appStore.ListSnippets(ctx); err != nil {
		logger.Printf("could not load stored snippets: %v", err)
	} else if err := index.Reindex(ctx, snippets); err != nil {
		logger.Printf("knowledge index build failed: %v", err)
	}

	recognizer, err := voice.NewGoogleRecognizer(ctx, &cfg.Voice)
	if err != nil {
		logger.Fatalf("failed to create recognizer: %v", err)
	}
	defer recognizer.Close()

	audioOut, err := os.OpenFile(*outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Fatalf("failed to open %s: %v", *outPath, err)
	}
	defer audioOut.Close()

	coordinator := booking.NewCoordinator(appStore)
	chatter := assistant.NewOpenAIChatter(&cfg.AI)
	svc := assistant.NewService(index, chatter, coordinator)

	speaker := &loggingSpeaker{
		logger: logger,
		next:   voice.NewHTTPSpeaker(&cfg.Voice, audioOut),
	}

	stdin := bufio.NewScanner(os.Stdin)
	listen := func(ctx context.Context) (string, error) {
		if !stdin.Scan() {
			return "", voice.ErrSilence
		}
		path := strings.TrimSpace(stdin.Text())
		if path == "" {
			return "", voice.ErrSilence
		}
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		text, err := recognizer.Recognize(ctx, f)
		if err == nil {
			logger.Printf("heard: %s", text)
		}
		return text, err
	}

	if err := svc.VoiceLoop(ctx, listen, speaker); err != nil {
		logger.Fatalf("conversation ended with error: %v", err)
	}
}

// loggingSpeaker prints each reply before synthesizing it.
type loggingSpeaker struct {
	logger *log.Logger
	next   voice.Speaker
}

func (s *loggingSpeaker) Speak(ctx context.Context, text string) error {
	s.logger.Printf("say: %s", text)
	return s.next.Speak(ctx, text)
}
