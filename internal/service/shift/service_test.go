package shift

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]any{
		"company_id":  "comp-1",
		"employee_id": "emp-admin",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func createRuleRequest() shift.CreateRuleRequest {
	return shift.CreateRuleRequest{
		Name:                 "Office",
		StartTime:            "09:00",
		EndTime:              "17:00",
		FullDayHours:         8,
		HalfDayHours:         4,
		GracePeriodMinutes:   10,
		LateThresholdMinutes: 5,
		WeeklyOffDays:        []int{0, 6},
	}
}

func TestRuleService_CreateRule_Success(t *testing.T) {
	repo := &fakeRuleRepo{}
	svc := NewRuleService(nil, repo)

	resp, err := svc.CreateRule(authedContext(t), createRuleRequest())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "comp-1", repo.created[0].CompanyID)
	assert.Equal(t, "Office", resp.Name)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
	assert.False(t, resp.IsDefault)
	assert.False(t, repo.clearDefaultCalled)
}

func TestRuleService_CreateRule_BadTimeFormat(t *testing.T) {
	repo := &fakeRuleRepo{}
	svc := NewRuleService(nil, repo)

	req := createRuleRequest()
	req.StartTime = "9am"

	_, err := svc.CreateRule(authedContext(t), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "start_time", verrs[0].Field)
	assert.Empty(t, repo.created)
}

func TestRuleService_CreateRule_MissingClaims(t *testing.T) {
	svc := NewRuleService(nil, &fakeRuleRepo{})

	_, err := svc.CreateRule(context.Background(), createRuleRequest())

	assert.Error(t, err)
}

func TestRuleService_GetDefaultRule(t *testing.T) {
	regular := shift.Rule{ID: "rule-regular", Name: "Regular", IsDefault: true}
	svc := NewRuleService(nil, &fakeRuleRepo{defaultRule: &regular})

	resp, err := svc.GetDefaultRule(authedContext(t))

	require.NoError(t, err)
	assert.Equal(t, "rule-regular", resp.ID)
	assert.True(t, resp.IsDefault)
}
