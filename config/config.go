package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Classifier strategies accepted by SENTIMENT_CLASSIFIER.
const (
	ClassifierAuto   = ""
	ClassifierRules  = "rules"
	ClassifierVader  = "vader"
	ClassifierONNX   = "onnx"
	ClassifierGemini = "gemini"
	ClassifierOpenAI = "openai"
)

const (
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultAnalysisTopic = "review-analyses"
)

type Settings struct {
	AppEnv   string
	Port     string
	LogLevel string

	Classifier string

	GoogleAPIKey     string
	GeminiModel      string
	OpenAIAPIKey     string
	OpenAIModel      string
	AIRequestTimeout time.Duration

	ONNXModelPath string

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool

	DynamoDBTable string
	AWSEndpoint   string
	AWSRegion     string

	KafkaBroker        string
	KafkaAnalysisTopic string

	RecordTimeout time.Duration
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

// Load reads Settings from the process environment. Call LoadEnv first to pull
// in the .env file for the current APP_ENV.
func Load() (Settings, error) {
	s := Settings{
		AppEnv:   AppEnv(),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Classifier: strings.ToLower(strings.TrimSpace(getEnv("SENTIMENT_CLASSIFIER", ClassifierAuto))),

		GoogleAPIKey: getEnv("GOOGLE_GENERATIVE_AI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", defaultGeminiModel),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", defaultOpenAIModel),

		ONNXModelPath: getEnv("ONNX_MODEL_PATH", ""),

		ValkeyAddress:  getEnv("VALKEY_INIT_ADDRESS", ""),
		ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
		ValkeyTLS:      getEnv("VALKEY_TLS", "") == "true",

		DynamoDBTable: getEnv("DYNAMODB_TABLE", ""),
		AWSEndpoint:   getEnv("AWS_ENDPOINT", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		KafkaAnalysisTopic: getEnv("KAFKA_ANALYSIS_TOPIC", defaultAnalysisTopic),
	}

	var err error
	if s.AIRequestTimeout, err = getDuration("AI_REQUEST_TIMEOUT", 60*time.Second); err != nil {
		return Settings{}, err
	}
	if s.RecordTimeout, err = getDuration("RECORD_TIMEOUT", 3*time.Second); err != nil {
		return Settings{}, err
	}

	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Classifier {
	case ClassifierAuto, ClassifierRules, ClassifierVader:
	case ClassifierONNX:
		if s.ONNXModelPath == "" {
			return errors.New("ONNX_MODEL_PATH is required when SENTIMENT_CLASSIFIER=onnx")
		}
	case ClassifierGemini:
		if s.GoogleAPIKey == "" {
			return errors.New("GOOGLE_GENERATIVE_AI_API_KEY is required when SENTIMENT_CLASSIFIER=gemini")
		}
	case ClassifierOpenAI:
		if s.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when SENTIMENT_CLASSIFIER=openai")
		}
	default:
		return fmt.Errorf("SENTIMENT_CLASSIFIER %q is not one of rules, vader, onnx, gemini, openai", s.Classifier)
	}
	return nil
}

// ResolvedClassifier is the strategy the service runs with. An explicit
// SENTIMENT_CLASSIFIER wins; otherwise the Google key is the only flag: set, it
// selects Gemini, unset, the word-list classifier. OpenAI is only reachable
// through SENTIMENT_CLASSIFIER=openai.
func (s Settings) ResolvedClassifier() string {
	if s.Classifier != ClassifierAuto {
		return s.Classifier
	}
	if s.GoogleAPIKey != "" {
		return ClassifierGemini
	}
	return ClassifierRules
}
