package notify

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("sender@corp.test", "finance@corp.test", "Bill Processed: ₹250.00", "<html><body>hi</body></html>")

	raw, err := base64.URLEncoding.DecodeString(msg.Raw)
	if err != nil {
		t.Fatalf("Raw is not base64url: %v", err)
	}
	decoded := string(raw)

	if !strings.Contains(decoded, "From: sender@corp.test\r\n") {
		t.Errorf("missing From header:\n%s", decoded)
	}
	if !strings.Contains(decoded, "To: finance@corp.test\r\n") {
		t.Errorf("missing To header:\n%s", decoded)
	}
	if !strings.Contains(decoded, "Content-Type: text/html") {
		t.Errorf("missing HTML content type:\n%s", decoded)
	}
	if !strings.HasSuffix(decoded, "\r\n<html><body>hi</body></html>") {
		t.Errorf("body not separated from headers by a blank line:\n%s", decoded)
	}
	// non-ASCII subject must be encoded for the header
	if strings.Contains(decoded, "Subject: Bill Processed: ₹250.00") {
		t.Errorf("subject with non-ASCII symbol should be Q-encoded:\n%s", decoded)
	}
	if !strings.Contains(decoded, "Subject: =?UTF-8?q?") {
		t.Errorf("expected Q-encoded subject header:\n%s", decoded)
	}
}

func TestBuildMessage_ASCIISubjectStaysPlain(t *testing.T) {
	msg := buildMessage("a@b.c", "d@e.f", "Bill Processed: 250.00", "body")

	raw, err := base64.URLEncoding.DecodeString(msg.Raw)
	if err != nil {
		t.Fatalf("Raw is not base64url: %v", err)
	}
	if !strings.Contains(string(raw), "Subject: Bill Processed: 250.00\r\n") {
		t.Errorf("plain ASCII subject should not be encoded:\n%s", raw)
	}
}
