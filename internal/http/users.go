package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmoteca/peliculas-api/internal/database/users"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// UserStore defines database operations for user management.
type UserStore interface {
	Create(name, email string) (*entities.User, error)
	GetByID(id uint) (*entities.User, error)
	List(page, pageSize int) ([]entities.User, int64, error)
	Update(id uint, params users.UpdateParams) (*entities.User, error)
	Delete(id uint) error
}

type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

type createUserRequest struct {
	Name  string `json:"nombre" binding:"required,min=1,max=100"`
	Email string `json:"correo" binding:"required,email,max=150"`
}

type updateUserRequest struct {
	Name  *string `json:"nombre" binding:"omitempty,min=1,max=100"`
	Email *string `json:"correo" binding:"omitempty,email,max=150"`
}

// List returns a page of users.
// GET /api/usuarios
func (uc *UsersController) List(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	userList, total, err := uc.store.List(page, pageSize)
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(userList, total, page, pageSize))
}

// Create registers a new user.
// POST /api/usuarios
func (uc *UsersController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := uc.store.Create(req.Name, req.Email)
	if err != nil {
		respondStoreError(c, err, "email", "create user")
		return
	}

	respondCreated(c, user)
}

// Get returns a single user.
// GET /api/usuarios/:id
func (uc *UsersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "user", "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update partially updates a user.
// PUT /api/usuarios/:id
func (uc *UsersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := uc.store.Update(id, users.UpdateParams{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondStoreError(c, err, "user", "update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user and cascades their favorite links.
// DELETE /api/usuarios/:id
func (uc *UsersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.store.Delete(id); err != nil {
		respondStoreError(c, err, "user", "delete user")
		return
	}

	respondNoContent(c)
}
