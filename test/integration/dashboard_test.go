package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"schoolhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardResponse struct {
	Success bool `json:"success"`
	Stats   []struct {
		Metric string `json:"metric"`
		Value  int64  `json:"value"`
		Label  string `json:"label"`
	} `json:"stats"`
}

func getStats(t *testing.T, ts *helpers.TestServer, userID, role string) dashboardResponse {
	t.Helper()

	path := fmt.Sprintf("/api/v1/dashboard/stats?user_id=%s&role=%s", userID, role)
	res, bodyStr := ts.SendRequest(t, http.MethodGet, path, "", nil, nil)
	require.Equal(t, http.StatusOK, res.Code, bodyStr)

	var parsed dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.True(t, parsed.Success)
	require.NotEmpty(t, parsed.Stats, "stats must never come back empty")
	return parsed
}

func metricNames(resp dashboardResponse) []string {
	names := make([]string, 0, len(resp.Stats))
	for _, s := range resp.Stats {
		names = append(names, s.Metric)
	}
	return names
}

func TestDashboardStats_ByRole(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	adminStats := getStats(t, ts, "ignored", "admin")
	assert.Contains(t, metricNames(adminStats), "total_users")
	assert.Contains(t, metricNames(adminStats), "upcoming_events")

	studentStats := getStats(t, ts, "ignored", "student")
	assert.Contains(t, metricNames(studentStats), "upcoming_events")

	// an unknown role still renders a dashboard
	unknownStats := getStats(t, ts, "ignored", "somebody-new")
	assert.NotEmpty(t, unknownStats.Stats)
}

func TestDashboardStats_TeacherCounts(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, teacher := helpers.CreateAndLoginUser(t, ts, tx,
		"Stats Teacher", helpers.UniqueEmail("stats_teacher"), "password123", "teacher")

	path := fmt.Sprintf("/api/v1/dashboard/stats?user_id=%s&role=teacher", teacher.ID)
	res, bodyStr := ts.SendRequest(t, http.MethodGet, path, "", tx, nil)
	require.Equal(t, http.StatusOK, res.Code, bodyStr)

	var parsed dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	assert.Contains(t, metricNames(parsed), "my_events")
	assert.Contains(t, metricNames(parsed), "unread_notifications")
}
