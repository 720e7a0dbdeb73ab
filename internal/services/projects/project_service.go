package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/models"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
)

// Service owns project persistence together with the cross-collection
// reference maintenance: Project.AssignedTo mirrored into each
// TeamMember.AssignedProjects, and the owning Client.MyProjects. All
// multi-entity writes run inside a single transaction so a failure in any
// step leaves no partial state.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

type CreateInput struct {
	Title       string
	Description string
	Category    string
	Budget      int64
	Deadline    *time.Time
	Attachments []string
	ClientID    uuid.UUID
	AssignedTo  []uuid.UUID
	Status      string
}

// Create persists the project, appends its id to the owning client's
// myProjects and to each assigned member's assignedProjects. Members that
// don't exist are skipped, matching the tolerant update-many semantics of
// the assignment flow.
func (s *Service) Create(freelancerID uuid.UUID, in CreateInput) (*models.Project, error) {
	status := in.Status
	if status == "" {
		status = models.ProjectStatusPending
	}
	assigned := in.AssignedTo
	if assigned == nil {
		assigned = []uuid.UUID{}
	}

	project := models.Project{
		Title:              in.Title,
		Description:        in.Description,
		Category:           in.Category,
		Budget:             in.Budget,
		Deadline:           in.Deadline,
		Attachments:        datatypes.NewJSONSlice(in.Attachments),
		ClientID:           in.ClientID,
		AssignedFreelancer: freelancerID,
		AssignedTo:         datatypes.NewJSONSlice(assigned),
		Progress:           0,
		Activity: datatypes.NewJSONSlice([]models.ActivityEntry{{
			Action:    "Project created",
			By:        fmt.Sprintf("Freelancer %s", freelancerID),
			Timestamp: time.Now(),
		}}),
		Status: status,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, "id = ?", in.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		client.MyProjects = appendUnique(client.MyProjects, project.ID)
		if err := tx.Model(&client).Update("my_projects", client.MyProjects).Error; err != nil {
			return err
		}

		return addProjectToMembers(tx, project.ID, assigned)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type UpdateInput struct {
	Title       *string
	Description *string
	Category    *string
	Budget      *int64
	Deadline    *time.Time
	Attachments *[]string
	AssignedTo  []uuid.UUID
	Status      *string
	Progress    *int
}

// Update persists field changes and reconciles the assignedTo set against
// each member's assignedProjects: removed members lose the project id first,
// then newly added members gain it; members present in both sets are not
// touched. Exactly one activity entry is appended per update, including
// no-op reassignments.
func (s *Service) Update(freelancerID, projectID uuid.UUID, in UpdateInput) (*models.Project, error) {
	var project models.Project

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		oldAssigned := []uuid.UUID(project.AssignedTo)
		newAssigned := in.AssignedTo
		if newAssigned == nil {
			newAssigned = []uuid.UUID{}
		}

		removed := difference(oldAssigned, newAssigned)
		added := difference(newAssigned, oldAssigned)

		if err := removeProjectFromMembers(tx, projectID, removed); err != nil {
			return err
		}
		if err := addProjectToMembers(tx, projectID, added); err != nil {
			return err
		}

		activity := append(project.Activity, models.ActivityEntry{
			Action:    "Project updated",
			By:        fmt.Sprintf("Freelancer %s", freelancerID),
			Timestamp: time.Now(),
		})

		updates := map[string]interface{}{
			"assigned_to": datatypes.NewJSONSlice(newAssigned),
			"activity":    datatypes.JSONSlice[models.ActivityEntry](activity),
		}
		if in.Title != nil {
			updates["title"] = *in.Title
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.Category != nil {
			updates["category"] = *in.Category
		}
		if in.Budget != nil {
			updates["budget"] = *in.Budget
		}
		if in.Deadline != nil {
			updates["deadline"] = *in.Deadline
		}
		if in.Attachments != nil {
			updates["attachments"] = datatypes.NewJSONSlice(*in.Attachments)
		}
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.Progress != nil {
			updates["progress"] = *in.Progress
		}

		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}

		return tx.First(&project, "id = ?", projectID).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func addProjectToMembers(tx *gorm.DB, projectID uuid.UUID, memberIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	var members []models.TeamMember
	if err := tx.Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
		return err
	}
	for i := range members {
		m := &members[i]
		m.AssignedProjects = appendUnique(m.AssignedProjects, projectID)
		if err := tx.Model(m).Update("assigned_projects", m.AssignedProjects).Error; err != nil {
			return err
		}
	}
	return nil
}

func removeProjectFromMembers(tx *gorm.DB, projectID uuid.UUID, memberIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	var members []models.TeamMember
	if err := tx.Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
		return err
	}
	for i := range members {
		m := &members[i]
		m.AssignedProjects = remove(m.AssignedProjects, projectID)
		if err := tx.Model(m).Update("assigned_projects", m.AssignedProjects).Error; err != nil {
			return err
		}
	}
	return nil
}

func appendUnique(ids datatypes.JSONSlice[uuid.UUID], id uuid.UUID) datatypes.JSONSlice[uuid.UUID] {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func remove(ids datatypes.JSONSlice[uuid.UUID], id uuid.UUID) datatypes.JSONSlice[uuid.UUID] {
	out := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return datatypes.NewJSONSlice(out)
}

// difference returns the ids in a that are not in b.
func difference(a, b []uuid.UUID) []uuid.UUID {
	inB := make(map[uuid.UUID]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	var out []uuid.UUID
	for _, id := range a {
		if !inB[id] {
			out = append(out, id)
		}
	}
	return out
}
