// SPDX-License-Identifier: GPL-3.0-only

package queue

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAnalysisJobRoundTrip(t *testing.T) {
	documentID := uint(42)
	job := AnalysisJob{
		AID:        "550e8400-e29b-41d4-a716-446655440000",
		UserID:     7,
		Discipline: "DRESSAGE",
		DocumentID: &documentID,
		CreatedAt:  time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("Failed to marshal job: %v", err)
	}

	var decoded AnalysisJob
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal job: %v", err)
	}

	if decoded.AID != job.AID {
		t.Errorf("Expected aid %s, got %s", job.AID, decoded.AID)
	}
	if decoded.UserID != job.UserID {
		t.Errorf("Expected user_id %d, got %d", job.UserID, decoded.UserID)
	}
	if decoded.DocumentID == nil || *decoded.DocumentID != documentID {
		t.Errorf("Expected document_id %d, got %v", documentID, decoded.DocumentID)
	}
	if decoded.HorseID != nil {
		t.Errorf("Expected horse_id to stay nil, got %v", decoded.HorseID)
	}
}
