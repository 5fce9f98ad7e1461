package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
)

// @Summary Log in a staff member
// @Description Exchange email and password for a JWT session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Invalid credentials or inactive account"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, account, err := h.accountService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Account: ModelToAccountResponse(account),
	})
}

// @Summary Create a staff account
// @Description Create a new staff account. Requires manager role.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account body CreateAccountRequest true "Account creation request"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /accounts [post]
func (h *Handler) createAccount(c *gin.Context) {
	var input CreateAccountRequest
	log := h.logger.WithField("method", "createAccount")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &models.StaffAccount{
		Email: input.Email,
		Name:  input.Name,
		Role:  input.Role,
	}
	if err := h.accountService.CreateAccount(c.Request.Context(), account, input.Password); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAccountResponse(account))
}

// @Summary Get a list of staff accounts
// @Description Get all staff accounts. Requires manager role.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /accounts [get]
func (h *Handler) listAccounts(c *gin.Context) {
	log := h.logger.WithField("method", "listAccounts")

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAccountResponses(accounts))
}

// @Summary Get a staff account by ID
// @Description Get a single staff account by its ID. Requires manager role.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /accounts/{id} [get]
func (h *Handler) getAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}
	log := h.logger.WithField("method", "getAccount").WithField("id", id)

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAccountResponse(account))
}

// @Summary Update a staff account
// @Description Update the name or role of a staff account. Requires manager role.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param account body UpdateAccountRequest true "Account update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid account ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /accounts/{id} [patch]
func (h *Handler) updateAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}
	log := h.logger.WithField("method", "updateAccount").WithField("id", id)

	var input UpdateAccountRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	if input.Name != "" {
		account.Name = input.Name
	}
	if input.Role != "" {
		account.Role = input.Role
	}

	if err := h.accountService.UpdateAccount(c.Request.Context(), account); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a staff account
// @Description Deactivate a staff account. The account can no longer log in. Requires manager role.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /accounts/{id} [delete]
func (h *Handler) deactivateAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}
	log := h.logger.WithField("method", "deactivateAccount").WithField("id", id)

	if err := h.accountService.DeactivateAccount(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
