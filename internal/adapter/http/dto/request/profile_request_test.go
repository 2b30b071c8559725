package request

import (
	"encoding/json"
	"testing"
)

func TestUpdateProfileRequest_ToCommand(t *testing.T) {
	var req UpdateProfileRequest
	body := `{"username":"ann","preferences":{"hallucination_mode":false,"quantum_processing":true,"theme":"dark"}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cmd := req.ToCommand()
	if cmd.Username != "ann" || cmd.Preferences.HallucinationMode || !cmd.Preferences.QuantumProcessing || cmd.Preferences.Theme != "dark" {
		t.Fatalf("unexpected command %+v", cmd)
	}
}
