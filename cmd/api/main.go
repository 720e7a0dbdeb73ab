package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/freelancehub/freelancehub-api/internal/auth"
	"github.com/freelancehub/freelancehub-api/internal/config"
	"github.com/freelancehub/freelancehub-api/internal/db"
	"github.com/freelancehub/freelancehub-api/internal/handlers"
	"github.com/freelancehub/freelancehub-api/internal/middleware"
	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/services/projects"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

func main() {
	_ = godotenv.Load()

	utils.InitLogger()
	defer utils.Logger.Sync()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	rdb := auth.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis not reachable:", err)
	}

	if err := gdb.AutoMigrate(
		&models.Freelancer{},
		&models.Client{},
		&models.TeamMember{},
		&models.Project{},
		&models.Proposal{},
	); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tokens := auth.NewTokenStore(rdb)
	authMW := middleware.JWTAuth(cfg.JWTSecret, tokens)
	selfMW := middleware.RequireSelf()

	authH := &handlers.AuthHandler{
		DB:        gdb,
		Tokens:    tokens,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	freelancerH := handlers.NewFreelancerHandler(gdb)
	clientH := handlers.NewClientHandler(gdb)
	teamH := handlers.NewTeamHandler(gdb)
	projectH := handlers.NewProjectHandler(gdb, projects.NewService(gdb))
	proposalH := handlers.NewProposalHandler(gdb)

	api := app.Group("/api/freelancers")

	// public
	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)

	// protected: token identity must match the acting freelancer in the path
	api.Post("/logout/:freelancerId", authMW, selfMW, authH.Logout)
	api.Get("/singlefreelancer/:freelancerId", authMW, selfMW, freelancerH.GetFreelancer)

	// clients
	api.Post("/createclient/:freelancerId", authMW, selfMW, clientH.CreateClient)
	api.Get("/getclients/:freelancerId", authMW, selfMW, clientH.GetClients)
	api.Get("/singleclient/:freelancerId/:clientId", authMW, selfMW, clientH.GetSingleClient)
	api.Put("/updateclients/:freelancerId/:clientId", authMW, selfMW, clientH.UpdateClient)
	api.Delete("/deleteclient/:freelancerId/:clientId", authMW, selfMW, clientH.DeleteClient)

	// team members
	api.Post("/createteam/:freelancerId", authMW, selfMW, teamH.CreateTeamMember)
	api.Get("/getallteam/:freelancerId", authMW, selfMW, teamH.GetAllTeamMembers)
	api.Get("/singleteam/:freelancerId/:memberId", authMW, selfMW, teamH.GetSingleTeamMember)
	api.Put("/updateteam/:freelancerId/:memberId", authMW, selfMW, teamH.UpdateTeamMember)
	api.Delete("/deleteteam/:freelancerId/:memberId", authMW, selfMW, teamH.DeleteTeamMember)

	// projects
	api.Post("/createproject/:freelancerId", authMW, selfMW, projectH.CreateProject)
	api.Get("/getprojects/:freelancerId", authMW, selfMW, projectH.GetProjects)
	api.Put("/updateproject/:freelancerId/:projectId", authMW, selfMW, projectH.UpdateProject)

	// proposals
	api.Post("/create-proposals/:freelancerId", authMW, selfMW, proposalH.CreateProposal)
	api.Get("/allproposals/:freelancerId", authMW, selfMW, proposalH.GetAllProposals)
	api.Get("/singleproposals/:freelancerId/:proposalId", authMW, selfMW, proposalH.GetProposalByID)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
