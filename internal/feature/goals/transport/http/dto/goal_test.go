package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_balance/internal/feature/goals/domain/entity"
	"youth_balance/internal/shared/apperr"
)

func TestGoalRequest_Fields(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantDate *string
		wantErr  bool
	}{
		{name: "missing", body: `{"title":"t"}`},
		{name: "null", body: `{"title":"t","target_date":null}`},
		{name: "empty", body: `{"title":"t","target_date":""}`},
		{name: "date", body: `{"title":"t","target_date":"2026-11-15"}`, wantDate: ptr("2026-11-15")},
		{name: "bad format", body: `{"title":"t","target_date":"15.11.2026"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GoalRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			f, err := req.Fields()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, entity.FormatDate(f.TargetDate))
		})
	}
}

func TestNewGoalList(t *testing.T) {
	assert.NotNil(t, NewGoalList(nil))

	d := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	out, err := json.Marshal(NewGoalList([]entity.Goal{
		{ID: 1, Title: "a", TargetDate: &d, Status: "active"},
		{ID: 2, Title: "b", Status: "active"},
	}))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"target_date":"2026-11-15"`)
	assert.Contains(t, string(out), `"target_date":null`)
}

func ptr(s string) *string { return &s }
