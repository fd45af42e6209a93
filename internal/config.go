package internal

type Config struct {
	ModelPath         string `env:"MODEL_PATH,default=models/video_classifier.json"`
	ModelConfigPath   string `env:"MODEL_CONFIG_PATH,default=config/model-config.json"`
	KeywordConfigPath string `env:"KEYWORD_CONFIG_PATH,default=config/video-keywords.json"`

	StatusTruePath    string `env:"STATUS_TRUE_PATH,default=data/status1_videos.txt"`
	StatusFalsePath   string `env:"STATUS_FALSE_PATH,default=data/status2_videos.txt"`
	StatusPendingPath string `env:"STATUS_PENDING_PATH,default=data/status0_videos.txt"`

	LabeledCSVPath     string `env:"LABELED_CSV_PATH,default=data/video_titles.csv"`
	UnlabeledCSVPath   string `env:"UNLABELED_CSV_PATH,default=data/video_titles_unlabeled.csv"`
	PredictionsPath    string `env:"PREDICTIONS_PATH,default=data/video_titles_predictions.csv"`
	PredictionsPosPath string `env:"PREDICTIONS_POSITIVE_PATH,default=data/video_titles_predictions_positive.csv"`
	PredictionsNegPath string `env:"PREDICTIONS_NEGATIVE_PATH,default=data/video_titles_predictions_negative.csv"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	NumberOfWorkers  int    `env:"NUMBER_OF_WORKERS,default=4"`
	BufferSize       int    `env:"BUFFER_SIZE,default=64"`
	DedupThreshold   int    `env:"DEDUP_THRESHOLD,default=2"`
	TelemetrySeconds int    `env:"TELEMETRY_SECONDS,default=0"`
	LogLevel         string `env:"LOG_LEVEL,default=INFO"`
	DebugPort        int    `env:"DEBUG_PORT,default=8089"`
}
