package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsStudioTimings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Studio.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %s, want %s", cfg.Studio.PollInterval, defaultPollInterval)
	}
	if cfg.Studio.SnapshotSettleDelay != defaultSnapshotSettle {
		t.Fatalf("SnapshotSettleDelay = %s, want %s", cfg.Studio.SnapshotSettleDelay, defaultSnapshotSettle)
	}
	if cfg.Storage.BucketURL != "mem://" {
		t.Fatalf("BucketURL = %q, want mem://", cfg.Storage.BucketURL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
}

func TestApplyDefaults_WorkerAndRetention(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.APILogs.Retention != defaultAPILogRetention {
		t.Fatalf("Retention = %s, want %s", cfg.APILogs.Retention, defaultAPILogRetention)
	}
	if cfg.APILogs.Schedule != defaultAPILogSchedule {
		t.Fatalf("Schedule = %q, want %q", cfg.APILogs.Schedule, defaultAPILogSchedule)
	}
	if cfg.Worker.Port != defaultWorkerPort {
		t.Fatalf("Worker.Port = %d, want %d", cfg.Worker.Port, defaultWorkerPort)
	}
}
