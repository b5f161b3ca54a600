package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("BQ_DATASET", "")
	t.Setenv("BQ_TABLE", "")
	t.Setenv("SENDER_EMAIL", "")
	t.Setenv("RECIPIENT_EMAIL", "")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Table != "Bills" {
		t.Errorf("Store.Table = %q, want %q", cfg.Store.Table, "Bills")
	}
	if cfg.Store.Dataset != "billing" {
		t.Errorf("Store.Dataset = %q, want %q", cfg.Store.Dataset, "billing")
	}
	if cfg.Email.Sender != FallbackEmail {
		t.Errorf("Email.Sender = %q, want fallback %q", cfg.Email.Sender, FallbackEmail)
	}
	if cfg.Email.Recipient != FallbackEmail {
		t.Errorf("Email.Recipient = %q, want fallback %q", cfg.Email.Recipient, FallbackEmail)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BQ_TABLE", "BillsStaging")
	t.Setenv("SENDER_EMAIL", "noreply@corp.test")
	t.Setenv("RECIPIENT_EMAIL", "finance@corp.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Table != "BillsStaging" {
		t.Errorf("Store.Table = %q, want %q", cfg.Store.Table, "BillsStaging")
	}
	if cfg.Email.Sender != "noreply@corp.test" {
		t.Errorf("Email.Sender = %q, want override", cfg.Email.Sender)
	}
	if cfg.Email.Recipient != "finance@corp.test" {
		t.Errorf("Email.Recipient = %q, want override", cfg.Email.Recipient)
	}
}
