// ABOUTME: Entry point for the soundcheck tool
// ABOUTME: Exercises the mixing engine against a real output device
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/xilonoide/xiloadventures-sub008/internal/assets"
	"github.com/xilonoide/xiloadventures-sub008/internal/device"
	"github.com/xilonoide/xiloadventures-sub008/internal/speech"
)

var (
	backendName = flag.String("backend", "malgo", "Output backend: malgo, oto, headless")
	musicPath   = flag.String("music", "", "WAV file to loop as the music bed (default: generated tone)")
	toneFreq    = flag.Float64("tone", 440, "Tone frequency in Hz when no music file is given")
	voicePath   = flag.String("voice", "", "WAV file to play as a one-shot voice line")
	say         = flag.String("say", "", "Line of text to synthesize as the voice (requires -tts)")
	ttsURL      = flag.String("tts", "", "TTS service endpoint for -say")
	ttsVoice    = flag.String("tts-voice", "", "Voice identifier passed to the TTS service")
	musicVol    = flag.Float64("music-volume", 1.0, "Music channel volume [0,1]")
	voiceVol    = flag.Float64("voice-volume", 1.0, "Voice channel volume [0,1]")
	masterVol   = flag.Float64("master-volume", 1.0, "Master volume [0,1]")
	duration    = flag.Duration("duration", 6*time.Second, "How long to run before shutting down")
)

func main() {
	flag.Parse()

	backend, err := pickBackend(*backendName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	dev := device.New(backend)
	defer dev.Dispose()

	if !dev.Initialize() {
		log.Fatalf("Sound unavailable on backend %q", *backendName)
	}

	dev.SetMasterVolume(*masterVol)
	dev.SetMusicVolume(*musicVol)
	dev.SetVoiceVolume(*voiceVol)

	// Music bed: the given file, or a generated tone.
	if *musicPath != "" {
		lib := assets.NewLibrary(filepath.Dir(*musicPath))
		data, err := lib.Load(filepath.Base(*musicPath))
		if err != nil {
			log.Fatalf("Failed to load music: %v", err)
		}
		dev.PlayMusic(data, true)
		log.Printf("Looping music bed: %s", *musicPath)
	} else {
		dev.PlayMusic(assets.Tone(*toneFreq, 0.4, 2*time.Second), true)
		log.Printf("Looping %gHz tone", *toneFreq)
	}

	// Voice line after a moment of bare music, so ducking is audible.
	go func() {
		time.Sleep(2 * time.Second)

		voice, err := loadVoice()
		if err != nil {
			log.Printf("No voice line: %v", err)
			return
		}
		if voice == nil {
			return
		}

		dev.PlayVoice(voice)
		log.Printf("Playing voice line, music ducked")

		for dev.IsVoicePlaying() {
			time.Sleep(50 * time.Millisecond)
		}
		log.Printf("Voice line finished")
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-time.After(*duration):
	case <-sigChan:
		log.Printf("Shutdown signal received")
	}

	dev.Dispose()
	log.Printf("Soundcheck done")
}

// pickBackend maps a backend name to an implementation.
func pickBackend(name string) (device.Backend, error) {
	switch name {
	case "malgo":
		return device.NewMalgo(), nil
	case "oto":
		return device.NewOto(), nil
	case "headless":
		return device.NewHeadless(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want malgo, oto, or headless)", name)
	}
}

// loadVoice resolves the voice payload from -voice or -say/-tts. Returns
// nil bytes when no voice was requested.
func loadVoice() ([]byte, error) {
	if *voicePath != "" {
		return os.ReadFile(*voicePath)
	}
	if *say != "" {
		if *ttsURL == "" {
			log.Printf("-say given without -tts; skipping voice line")
			return nil, nil
		}
		client := speech.NewClient(speech.Config{URL: *ttsURL, Voice: *ttsVoice})
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return client.Synthesize(ctx, *say)
	}
	return nil, nil
}
