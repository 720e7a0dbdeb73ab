package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

type ProposalHandler struct {
	DB *gorm.DB
}

func NewProposalHandler(db *gorm.DB) *ProposalHandler {
	return &ProposalHandler{DB: db}
}

type ProposalCreateReq struct {
	ClientID           string     `json:"clientId"`
	ProjectID          string     `json:"projectId"`
	Overview           string     `json:"overview"`
	ScopeOfWork        string     `json:"scopeOfWork"`
	StartTime          *time.Time `json:"startTime"`
	EndTime            *time.Time `json:"endTime"`
	TotalAmount        int64      `json:"totalAmount"`
	TermsAndConditions string     `json:"termsAndConditions"`
	Status             string     `json:"status"`
}

// ClientRef and ProjectRef are the read-time projections returned in place
// of the raw reference ids, not stored denormalizations.
type ClientRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ProjectRef struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type ProposalResponse struct {
	ID                 uuid.UUID   `json:"id"`
	Client             *ClientRef  `json:"clientId"`
	Project            *ProjectRef `json:"projectId"`
	Overview           string      `json:"overview"`
	ScopeOfWork        string      `json:"scopeOfWork"`
	StartTime          *time.Time  `json:"startTime"`
	EndTime            *time.Time  `json:"endTime"`
	TotalAmount        int64       `json:"totalAmount"`
	TermsAndConditions string      `json:"termsAndConditions"`
	Status             string      `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func (h *ProposalHandler) CreateProposal(c *fiber.Ctx) error {
	var req ProposalCreateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.ClientID) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "clientId and projectId are required",
		})
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
		})
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project id",
		})
	}

	status := req.Status
	if status == "" {
		status = models.ProposalStatusPending
	}

	proposal := models.Proposal{
		ClientID:           clientID,
		ProjectID:          projectID,
		Overview:           req.Overview,
		ScopeOfWork:        req.ScopeOfWork,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		TotalAmount:        req.TotalAmount,
		TermsAndConditions: req.TermsAndConditions,
		Status:             status,
	}

	if err := h.DB.Create(&proposal).Error; err != nil {
		utils.Logger.Error("proposal create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while creating proposal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Proposal created successfully",
		"proposal": proposal,
	})
}

func (h *ProposalHandler) GetAllProposals(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var list []models.Proposal
	if err := h.DB.Find(&list).Error; err != nil {
		utils.Logger.Error("proposals fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching proposals",
		})
	}

	out, err := h.expandProposals(list)
	if err != nil {
		utils.Logger.Error("proposal reference expansion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching proposals",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Proposals fetched successfully",
		"proposals": out,
		"viewedBy":  freelancerID,
	})
}

func (h *ProposalHandler) GetProposalByID(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	proposalID, err := uuid.Parse(c.Params("proposalId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid proposal id",
		})
	}

	var proposal models.Proposal
	if err := h.DB.First(&proposal, "id = ?", proposalID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Proposal not found",
			})
		}
		utils.Logger.Error("proposal fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching proposal",
		})
	}

	out, err := h.expandProposals([]models.Proposal{proposal})
	if err != nil {
		utils.Logger.Error("proposal reference expansion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching proposal",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Proposal fetched successfully",
		"proposal": out[0],
		"viewedBy": freelancerID,
	})
}

// expandProposals resolves client and project references into partial
// projections ({name,email} and {title,description}) with two batched
// lookups. References to missing entities come back nil, like an
// unresolvable populate.
func (h *ProposalHandler) expandProposals(list []models.Proposal) ([]ProposalResponse, error) {
	clientIDs := make([]uuid.UUID, 0, len(list))
	projectIDs := make([]uuid.UUID, 0, len(list))
	for _, p := range list {
		clientIDs = append(clientIDs, p.ClientID)
		projectIDs = append(projectIDs, p.ProjectID)
	}

	clients := map[uuid.UUID]*ClientRef{}
	if len(clientIDs) > 0 {
		var rows []models.Client
		if err := h.DB.Select("id", "name", "email").Where("id IN ?", clientIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			clients[r.ID] = &ClientRef{ID: r.ID, Name: r.Name, Email: r.Email}
		}
	}

	projectRefs := map[uuid.UUID]*ProjectRef{}
	if len(projectIDs) > 0 {
		var rows []models.Project
		if err := h.DB.Select("id", "title", "description").Where("id IN ?", projectIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			projectRefs[r.ID] = &ProjectRef{ID: r.ID, Title: r.Title, Description: r.Description}
		}
	}

	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProposalResponse{
			ID:                 p.ID,
			Client:             clients[p.ClientID],
			Project:            projectRefs[p.ProjectID],
			Overview:           p.Overview,
			ScopeOfWork:        p.ScopeOfWork,
			StartTime:          p.StartTime,
			EndTime:            p.EndTime,
			TotalAmount:        p.TotalAmount,
			TermsAndConditions: p.TermsAndConditions,
			Status:             p.Status,
			CreatedAt:          p.CreatedAt,
			UpdatedAt:          p.UpdatedAt,
		})
	}
	return out, nil
}
