package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancehub/freelancehub-api/internal/models"
)

func (e *testEnv) seedClient(t *testing.T, email string) models.Client {
	t.Helper()
	client := models.Client{Name: "Acme Corp", Email: email, Mobile: "5550001111", Password: "x"}
	require.NoError(t, e.db.Create(&client).Error)
	return client
}

func (e *testEnv) seedMember(t *testing.T, email string) models.TeamMember {
	t.Helper()
	member := models.TeamMember{Name: "Ravi Kumar", Email: email, Role: "Developer"}
	require.NoError(t, e.db.Create(&member).Error)
	return member
}

func TestCreateProjectMaintainsReferences(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")
	client := e.seedClient(t, "acme@example.com")
	m1 := e.seedMember(t, "m1@example.com")
	m2 := e.seedMember(t, "m2@example.com")

	status, body := e.request(t, "POST", "/api/freelancers/createproject/"+id, token, map[string]interface{}{
		"title":       "Website redesign",
		"description": "Full redesign of the marketing site",
		"budget":      5000,
		"clientId":    client.ID.String(),
		"assignedTo":  []string{m1.ID.String(), m2.ID.String()},
	})
	require.Equal(t, 201, status, "body: %v", body)
	assert.Equal(t, "Project created successfully", body["message"])

	project := body["project"].(map[string]interface{})
	projectID := uuid.MustParse(project["id"].(string))
	assert.Equal(t, "Pending", project["status"])
	assert.Equal(t, float64(0), project["progress"])
	assert.Len(t, project["assignedTo"], 2)
	assert.Len(t, project["activity"], 1)

	var gotClient models.Client
	require.NoError(t, e.db.First(&gotClient, "id = ?", client.ID).Error)
	assert.Contains(t, []uuid.UUID(gotClient.MyProjects), projectID)

	for _, m := range []models.TeamMember{m1, m2} {
		var got models.TeamMember
		require.NoError(t, e.db.First(&got, "id = ?", m.ID).Error)
		assert.Contains(t, []uuid.UUID(got.AssignedProjects), projectID)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "POST", "/api/freelancers/createproject/"+id, token, map[string]interface{}{
		"title": "Website redesign",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Title, description, budget, and clientId are required", body["message"])
}

func TestCreateProjectUnknownClient(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "POST", "/api/freelancers/createproject/"+id, token, map[string]interface{}{
		"title":       "Website redesign",
		"description": "Full redesign",
		"budget":      5000,
		"clientId":    "b5f1c8aa-0000-4000-8000-000000000000",
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, "Client not found", body["message"])

	var count int64
	require.NoError(t, e.db.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "nothing persisted when the owning client is missing")
}

func TestGetProjectsSortedByNewest(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")
	client := e.seedClient(t, "acme@example.com")

	for _, title := range []string{"First", "Second"} {
		status, _ := e.request(t, "POST", "/api/freelancers/createproject/"+id, token, map[string]interface{}{
			"title":       title,
			"description": "d",
			"budget":      100,
			"clientId":    client.ID.String(),
		})
		require.Equal(t, 201, status)
	}

	status, body := e.request(t, "GET", "/api/freelancers/getprojects/"+id, token, nil)
	require.Equal(t, 200, status)
	list := body["projects"].([]interface{})
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "Second", first["title"], "newest project first")
}

func TestUpdateProjectRoute(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")
	client := e.seedClient(t, "acme@example.com")
	m1 := e.seedMember(t, "m1@example.com")

	_, body := e.request(t, "POST", "/api/freelancers/createproject/"+id, token, map[string]interface{}{
		"title":       "Website redesign",
		"description": "d",
		"budget":      100,
		"clientId":    client.ID.String(),
	})
	projectID := body["project"].(map[string]interface{})["id"].(string)

	status, body := e.request(t, "PUT", "/api/freelancers/updateproject/"+id+"/"+projectID, token, map[string]interface{}{
		"title":      "Website rebuild",
		"progress":   40,
		"assignedTo": []string{m1.ID.String()},
	})
	require.Equal(t, 200, status, "body: %v", body)
	project := body["project"].(map[string]interface{})
	assert.Equal(t, "Website rebuild", project["title"])
	assert.Equal(t, float64(40), project["progress"])
	assert.Len(t, project["assignedTo"], 1)
	assert.Len(t, project["activity"], 2)
}

func TestUpdateProjectProgressBounds(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "PUT", "/api/freelancers/updateproject/"+id+"/"+uuid.NewString(), token, map[string]interface{}{
		"progress": 150,
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Progress must be between 0 and 100", body["message"])
}

func TestUpdateMissingProject(t *testing.T) {
	e := newTestEnv(t)
	id, token := e.registerFreelancer(t, "owner@example.com", "9876543210")

	status, body := e.request(t, "PUT", "/api/freelancers/updateproject/"+id+"/"+uuid.NewString(), token, map[string]interface{}{
		"title": "x",
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, "Project not found", body["message"])
}
