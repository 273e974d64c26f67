package config

import "testing"

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DBNAME", "health_platform_test")
	t.Setenv("S3_BUCKET", "test-bucket")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Fatalf("unexpected mongo uri %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.DBName != "health_platform_test" {
		t.Fatalf("unexpected db name %q", cfg.Mongo.DBName)
	}
	if cfg.S3.Bucket != "test-bucket" {
		t.Fatalf("unexpected bucket %q", cfg.S3.Bucket)
	}
}

func TestLoadConfigDefaultPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
}
