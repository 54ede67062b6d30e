package taskControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

// ErrUnknownAssignee is returned when an assignee name matches no team member.
var ErrUnknownAssignee = errors.New("assignee is not a team member")

var errAssigneeLookup = errors.New("failed to look up assignee")

type TaskInput struct {
	ID          models.FlexID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Assignee    string        `json:"assignee"`
	Priority    string        `json:"priority"`
	Tags        []string      `json:"tags"`
	DueDate     string        `json:"dueDate"`
	Status      string        `json:"status"`
}

// ResolveAssignee maps a member name onto its id. Empty and "Unassigned" map
// to nil.
func ResolveAssignee(db *gorm.DB, name string) (*uint, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, models.Unassigned) {
		return nil, nil
	}

	var member models.User
	err := db.Select("id").Where("name = ?", name).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAssignee, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errAssigneeLookup, err)
	}
	return &member.ID, nil
}

// toModel validates the enum fields and resolves the assignee.
func (in TaskInput) toModel(db *gorm.DB) (models.Task, error) {
	priority, err := models.ParseTaskPriority(in.Priority)
	if err != nil {
		return models.Task{}, err
	}
	status, err := models.ParseTaskStatus(in.Status)
	if err != nil {
		return models.Task{}, err
	}
	assigneeID, err := ResolveAssignee(db, in.Assignee)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          in.ID.Uint(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		AssigneeID:  assigneeID,
		Priority:    priority,
		TagRows:     models.BuildTagRows(in.Tags),
		DueDate:     strings.TrimSpace(in.DueDate),
		Status:      status,
	}
	task.Assignee = models.Unassigned
	if assigneeID != nil {
		task.Assignee = strings.TrimSpace(in.Assignee)
	}
	task.Tags = make([]string, 0, len(task.TagRows))
	for _, tag := range task.TagRows {
		task.Tags = append(task.Tags, tag.Name)
	}
	return task, nil
}

// inputError answers 400 for rejected input and 500 when the lookup itself failed.
func inputError(c *gin.Context, err error) {
	if errors.Is(err, errAssigneeLookup) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up assignee"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// GET /tasks
func GetTasks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks := []models.Task{}
		err := db.WithContext(c.Request.Context()).
			Preload("AssigneeUser").
			Preload("TagRows", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			Order("due_date ASC").
			Order("id ASC").
			Find(&tasks).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
			return
		}
		for i := range tasks {
			tasks[i].Hydrate()
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// POST /tasks
func CreateTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}

		ctxDB := db.WithContext(c.Request.Context())
		task, err := input.toModel(ctxDB)
		if err != nil {
			inputError(c, err)
			return
		}
		task.ID = 0

		if err := ctxDB.Create(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

// PUT /tasks
// Tags are replaced as a whole.
func UpdateTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.ID == 0 {
			if id, ok := utils.ResourceID(c); ok {
				input.ID = models.FlexID(id)
			}
		}
		if input.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		ctxDB := db.WithContext(c.Request.Context())
		task, err := input.toModel(ctxDB)
		if err != nil {
			inputError(c, err)
			return
		}

		err = ctxDB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
				"title":       task.Title,
				"description": task.Description,
				"assignee_id": task.AssigneeID,
				"priority":    task.Priority,
				"due_date":    task.DueDate,
				"status":      task.Status,
			}).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
				return err
			}
			if count == 0 || len(task.TagRows) == 0 {
				return nil
			}
			for i := range task.TagRows {
				task.TagRows[i].TaskID = task.ID
			}
			return tx.Create(&task.TagRows).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// DELETE /tasks?id=
func DeleteTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Task{}, id).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
