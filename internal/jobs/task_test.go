package jobs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	instID := uuid.New()
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		payload Payload
	}{
		{"import", ImportPayload{FileRef: "jobs/upload.csv", SkipDuplicates: true, ChunkSize: 50}},
		{"export", ExportPayload{Format: "csv", From: &from, IncludeDeleted: true}},
		{"generate", GeneratePassesPayload{ApplicationIDs: []uuid.UUID{uuid.New(), uuid.New()}, ValidityDays: 30}},
		{"status", UpdateStatusPayload{PassIDs: []uuid.UUID{uuid.New()}, NewStatus: constants.PassRevoked}},
		{"cleanup", CleanupPayload{RetentionDays: 90}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{
				JobID:         uuid.New(),
				UserID:        uuid.New(),
				InstitutionID: &instID,
				Payload:       tc.payload,
			}
			raw, err := EncodeTask(task)
			require.NoError(t, err)

			got, err := DecodeTask(task.JobID, raw)
			require.NoError(t, err)
			assert.Equal(t, task.JobID, got.JobID)
			assert.Equal(t, task.UserID, got.UserID)
			require.NotNil(t, got.InstitutionID)
			assert.Equal(t, instID, *got.InstitutionID)
			assert.Equal(t, tc.payload, got.Payload)
		})
	}
}

func TestDecodeTaskUnknownKind(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"kind":   "reticulate_splines",
		"userId": uuid.New().String(),
		"data":   map[string]any{},
	})
	require.NoError(t, err)

	_, err = DecodeTask(uuid.New(), raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task kind")
}

func TestDecodeTaskGarbage(t *testing.T) {
	_, err := DecodeTask(uuid.New(), json.RawMessage(`{not json`))
	require.Error(t, err)
}

func TestLaneForCoversEveryKind(t *testing.T) {
	kinds := []Kind{KindImport, KindExport, KindGeneratePasses, KindUpdateStatus, KindCleanup}
	seen := map[string]bool{}
	for _, k := range kinds {
		lane := LaneFor(k)
		require.NotEmpty(t, lane, "kind %q has no lane", k)
		assert.False(t, seen[lane], "lane %q mapped twice", lane)
		seen[lane] = true
		assert.Equal(t, k, KindForLane(lane))
	}
	assert.Empty(t, LaneFor(Kind("bogus")))
	assert.Empty(t, string(KindForLane("bogus")))
}
