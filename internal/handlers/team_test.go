package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancehub/freelancehub-api/internal/models"
)

func teamPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":   "Ravi Kumar",
		"email":  email,
		"role":   "Designer",
		"status": "Active",
	}
}

func TestCreateTeamMember(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "POST", "/api/freelancers/createteam/"+id, token, teamPayload("ravi@example.com"))
	require.Equal(t, 201, status, "body: %v", body)
	assert.Equal(t, "Team member created successfully", body["message"])
	assert.Equal(t, id, body["addedBy"])

	member := body["teamMember"].(map[string]interface{})
	assert.Equal(t, "Designer", member["role"])
}

func TestCreateTeamMemberValidation(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "POST", "/api/freelancers/createteam/"+id, token, map[string]interface{}{
		"name": "Ravi Kumar",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Name, email, and role are required", body["message"])
}

func TestCreateTeamMemberDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, _ := e.request(t, "POST", "/api/freelancers/createteam/"+id, token, teamPayload("ravi@example.com"))
	require.Equal(t, 201, status)

	status, body := e.request(t, "POST", "/api/freelancers/createteam/"+id, token, teamPayload("ravi@example.com"))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Team member with this email already exists", body["message"])

	var count int64
	require.NoError(t, e.db.Model(&models.TeamMember{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUpdateDeleteTeamMember(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	_, body := e.request(t, "POST", "/api/freelancers/createteam/"+id, token, teamPayload("ravi@example.com"))
	memberID := body["teamMember"].(map[string]interface{})["id"].(string)

	status, body := e.request(t, "GET", "/api/freelancers/getallteam/"+id, token, nil)
	require.Equal(t, 200, status)
	assert.Len(t, body["members"], 1)

	status, body = e.request(t, "GET", "/api/freelancers/singleteam/"+id+"/"+memberID, token, nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "Team member fetched successfully", body["message"])

	status, body = e.request(t, "PUT", "/api/freelancers/updateteam/"+id+"/"+memberID, token, map[string]interface{}{
		"role": "Lead Designer",
	})
	require.Equal(t, 200, status)
	updated := body["updatedMember"].(map[string]interface{})
	assert.Equal(t, "Lead Designer", updated["role"])
	assert.Equal(t, "Ravi Kumar", updated["name"])

	status, body = e.request(t, "DELETE", "/api/freelancers/deleteteam/"+id+"/"+memberID, token, nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "Team member deleted successfully", body["message"])
}

func TestDeleteMissingTeamMember(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "DELETE", "/api/freelancers/deleteteam/"+id+"/b5f1c8aa-0000-4000-8000-000000000000", token, nil)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Team member not found", body["message"])
}
