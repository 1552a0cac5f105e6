package health

import "testing"

func TestServicePayloads(t *testing.T) {
	svc := NewService("cvOS Backend", "1.0.0")

	root := svc.Root()
	if root["status"] != "ok" || root["service"] != "cvOS Backend" || root["version"] != "1.0.0" {
		t.Fatalf("unexpected root payload: %v", root)
	}

	status := svc.Status()
	if status["ok"] != true || status["version"] != "1.0.0" {
		t.Fatalf("unexpected status payload: %v", status)
	}
}
