package config

import "os"

type Config struct {
	ServerPort string

	SupabaseURL string
	SupabaseKey string

	ElevenLabsAPIKey  string
	ElevenLabsAPIURL  string
	ElevenLabsVoiceID string
	AudioDir          string

	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
}

func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseKey:       getEnv("SUPABASE_KEY", ""),
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsAPIURL:  getEnv("ELEVENLABS_API_URL", "https://api.elevenlabs.io"),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		AudioDir:          getEnv("AUDIO_DIR", "static/audio"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:      getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
