package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/auth"
	"github.com/freelancehub/freelancehub-api/internal/middleware"
	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/services/projects"
)

const testSecret = "test-secret"

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	mr  *miniredis.Miniredis
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// :memory: is per-connection; keep the pool at one so every query sees
	// the same database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Freelancer{},
		&models.Client{},
		&models.TeamMember{},
		&models.Project{},
		&models.Proposal{},
	))
	return gdb
}

// newTestEnv builds the app with the same route table as cmd/api.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tokens := auth.NewTokenStore(rdb)

	authMW := middleware.JWTAuth(testSecret, tokens)
	selfMW := middleware.RequireSelf()

	authH := &AuthHandler{DB: gdb, Tokens: tokens, JWTSecret: testSecret, Expires: 60}
	freelancerH := NewFreelancerHandler(gdb)
	clientH := NewClientHandler(gdb)
	teamH := NewTeamHandler(gdb)
	projectH := NewProjectHandler(gdb, projects.NewService(gdb))
	proposalH := NewProposalHandler(gdb)

	app := fiber.New()
	api := app.Group("/api/freelancers")

	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)
	api.Post("/logout/:freelancerId", authMW, selfMW, authH.Logout)
	api.Get("/singlefreelancer/:freelancerId", authMW, selfMW, freelancerH.GetFreelancer)

	api.Post("/createclient/:freelancerId", authMW, selfMW, clientH.CreateClient)
	api.Get("/getclients/:freelancerId", authMW, selfMW, clientH.GetClients)
	api.Get("/singleclient/:freelancerId/:clientId", authMW, selfMW, clientH.GetSingleClient)
	api.Put("/updateclients/:freelancerId/:clientId", authMW, selfMW, clientH.UpdateClient)
	api.Delete("/deleteclient/:freelancerId/:clientId", authMW, selfMW, clientH.DeleteClient)

	api.Post("/createteam/:freelancerId", authMW, selfMW, teamH.CreateTeamMember)
	api.Get("/getallteam/:freelancerId", authMW, selfMW, teamH.GetAllTeamMembers)
	api.Get("/singleteam/:freelancerId/:memberId", authMW, selfMW, teamH.GetSingleTeamMember)
	api.Put("/updateteam/:freelancerId/:memberId", authMW, selfMW, teamH.UpdateTeamMember)
	api.Delete("/deleteteam/:freelancerId/:memberId", authMW, selfMW, teamH.DeleteTeamMember)

	api.Post("/createproject/:freelancerId", authMW, selfMW, projectH.CreateProject)
	api.Get("/getprojects/:freelancerId", authMW, selfMW, projectH.GetProjects)
	api.Put("/updateproject/:freelancerId/:projectId", authMW, selfMW, projectH.UpdateProject)

	api.Post("/create-proposals/:freelancerId", authMW, selfMW, proposalH.CreateProposal)
	api.Get("/allproposals/:freelancerId", authMW, selfMW, proposalH.GetAllProposals)
	api.Get("/singleproposals/:freelancerId/:proposalId", authMW, selfMW, proposalH.GetProposalByID)

	return &testEnv{app: app, db: gdb, mr: mr}
}

// request performs a JSON request against the test app and decodes the
// response body into a generic map.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// registerFreelancer registers a fresh freelancer and returns its id and a
// valid session token.
func (e *testEnv) registerFreelancer(t *testing.T, email, mobile string) (string, string) {
	t.Helper()

	status, body := e.request(t, "POST", "/api/freelancers/register", "", map[string]interface{}{
		"name":            "Asha Verma",
		"email":           email,
		"mobile":          mobile,
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	require.Equal(t, 201, status, "register response: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	freelancer := body["freelancer"].(map[string]interface{})
	id, _ := freelancer["id"].(string)
	require.NotEmpty(t, id)
	return id, token
}
